package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskward/taskward-server/internal/model"
)

// Query-level behavior is covered by the integration tests; these
// only pin the interface contracts.
func TestRepositories_ImplementStores(t *testing.T) {
	var userStore model.UserStore = NewUserRepository(nil)
	assert.NotNil(t, userStore)

	var taskStore model.TaskStore = NewTaskRepository(nil)
	assert.NotNil(t, taskStore)
}
