package repo

import (
	"testing"
)

// MockRepo returns a repo rooted in a temp dir with memory storage, the
// default owner and a couple of pre-funded role holders for tests.
func MockRepo(t testing.TB) *Repo {
	rep := Default(t.TempDir())
	rep.Config.Storage.KVType = KVStorageTypeMemory
	return rep
}
