package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/plugin/dbresolver"
)

// The go-lib client registers dbresolver for read replicas; the pinned release
// must plug into the gorm version in use.
func TestReplicaResolverPlugsIntoGorm(t *testing.T) {
	db, _ := newMockDB(t)

	err := db.Use(dbresolver.Register(dbresolver.Config{}))
	assert.NoError(t, err)
}
