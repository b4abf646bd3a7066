package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)
	a.Equal("default", Getenv("test_holdem_missing", "default"))

	unset := SetEnv("test_holdem_missing", "value")
	defer unset()
	a.Equal("value", Getenv("test_holdem_missing", "default"))
}

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("test_foo")

	a.False(found)
	unset1 := SetEnv("test_foo", "bar")
	a.Equal("bar", os.Getenv("test_foo"))

	unset2 := SetEnv("test_foo", "bar2")
	a.Equal("bar2", os.Getenv("test_foo"))
	unset2()
	a.Equal("bar", os.Getenv("test_foo"))
	unset1()

	_, found = os.LookupEnv("test_foo")
	a.False(found)
}
