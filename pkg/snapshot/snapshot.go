package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces every snapshot to be rewritten when set to a non-empty value
const UpdateEnv = "PORTFOLIO_UPDATE_SNAPSHOTS"

var funcCount = make(map[string]int)

// ValidateSnapshot compares obj, marshalled as indented JSON, to testdata/<func>-<n>.json
// The file is named after the calling function (depth levels above the caller) and the
// number of snapshots it has taken so far. A missing file is created.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	Validate(t, fmt.Sprintf("%s-%d", funcName, call), obj, msgAndArgs...)
}

// Validate compares obj to the snapshot testdata/<name>.json
func Validate(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := filepath.Join("testdata", name+".json")
	if os.Getenv(UpdateEnv) != "" {
		write(t, filename, obj)
		return
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			write(t, filename, obj)
			return
		}

		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s (set %s=1 to update)", filename, UpdateEnv)
	}
}

func write(t *testing.T, filename string, obj interface{}) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot dir: %v", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		t.Fatalf("could not create snapshot %s: %v", filename, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		t.Fatalf("could not write snapshot %s: %v", filename, err)
	}
}
