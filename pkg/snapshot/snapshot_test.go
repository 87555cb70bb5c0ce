package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	a.NoError(err)
	a.NoError(os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	obj := map[string]int{"pot": 20}
	ValidateSnapshot(t, obj, 0)

	b, err := os.ReadFile(filepath.Join("testdata", "snapshot.TestValidateSnapshot-0.json"))
	a.NoError(err)
	a.Equal("{\n  \"pot\": 20\n}\n", string(b))

	// a second call in the same test gets its own snapshot
	ValidateSnapshot(t, obj, 0)
	_, err = os.Stat(filepath.Join("testdata", "snapshot.TestValidateSnapshot-1.json"))
	a.NoError(err)

	// an existing snapshot is compared
	a.NoError(os.WriteFile(filepath.Join("testdata", "snapshot.TestValidateSnapshot-2.json"), b, 0644))
	ValidateSnapshot(t, obj, 0)
}
