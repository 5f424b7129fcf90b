package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkersRunInOrder(t *testing.T) {
	var order []string

	w := New(
		WorkerFunc(func() { order = append(order, "first") }),
		WorkerFunc(func() { order = append(order, "second") }),
		WorkerFunc(func() { order = append(order, "third") }),
	)
	w.Run()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestWorkersRunEmpty(t *testing.T) {
	assert.NotPanics(t, func() { New().Run() })
}

func TestWorkerFuncAdaptsFunction(t *testing.T) {
	called := false
	var w Worker = WorkerFunc(func() { called = true })

	w.Run()
	assert.True(t, called)
}
