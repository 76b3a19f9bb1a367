package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	assert.True(t, Is(wrappedErr, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("desktop path not found", "/home/u/Desktop", PathNotFound, nil)
	assert.Equal(t, "desktop path not found: /home/u/Desktop", fileErr.Error())
	assert.Equal(t, "/home/u/Desktop", fileErr.Path())
	assert.Equal(t, PathNotFound, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("move failed", "report.txt", MoveFailed, origErr)
	assert.Equal(t, "move failed: report.txt: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))
}

func TestKindPredicates(t *testing.T) {
	pathErr := NewFileError("desktop path not found", "/nope", PathNotFound, nil)
	moveErr := NewFileError("move failed", "a.txt", MoveFailed, nil)
	cfgErr := NewConfigError("invalid collision setting", "collision", nil)

	assert.True(t, IsPathNotFound(pathErr))
	assert.False(t, IsPathNotFound(moveErr))

	assert.True(t, IsMoveFailed(moveErr))
	assert.False(t, IsMoveFailed(pathErr))

	assert.True(t, IsInvalidConfig(cfgErr))
	assert.False(t, IsInvalidConfig(pathErr))

	// Predicates see through wrapping
	assert.True(t, IsPathNotFound(Wrap(pathErr, "scan failed")))

	// Plain errors match nothing
	assert.False(t, IsPathNotFound(fmt.Errorf("boring")))
	assert.False(t, IsFileNotFound(nil))
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("invalid collision setting", "collision", nil)
	assert.Equal(t, "invalid collision setting: collision", cfgErr.Error())
	assert.Equal(t, "collision", cfgErr.Param())
	assert.Equal(t, InvalidConfig, cfgErr.Kind())
}
