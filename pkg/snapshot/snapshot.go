package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	funcCountLock sync.Mutex
	funcCount     = make(map[string]int)
)

// Validate compares the JSON encoding of obj against testdata/<func>-<call>.json
// A missing snapshot file is written instead of compared. Set UPDATE_SNAPSHOTS=1 to rewrite every snapshot.
// depth is the number of helper functions between the test and this call.
func Validate(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	funcCountLock.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	funcCountLock.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv("UPDATE_SNAPSHOTS") == "1" {
		write(t, filename, objJSON)
		return
	} else if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func write(t *testing.T, filename string, objJSON []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(objJSON, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}
