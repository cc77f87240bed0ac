package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/mael/pkg/domain"
)

func TestStep_KeepsInsertionOrder(t *testing.T) {
	s := domain.NewStep()
	s.Set("b", "1")
	s.Set("a", "2")
	s.Set("c", "3")
	s.Set("b", "updated")

	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())
	v, ok := s.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "updated", v)

	s.Delete("a")
	assert.Equal(t, []string{"b", "c"}, s.Keys())
	assert.False(t, s.Has("a"))
	assert.Equal(t, 2, s.Len())

	s.Delete("missing")
	assert.Equal(t, 2, s.Len())
}

func TestStep_Items(t *testing.T) {
	s := domain.StepOf("List", []string{"x", "y"}, "Text", "plain", "No.", 3)

	items, ok := s.Items("List")
	assert.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, items)

	items, ok = s.Items("Text")
	assert.True(t, ok)
	assert.Equal(t, []string{"plain"}, items)

	_, ok = s.Items("No.")
	assert.False(t, ok)
}

func TestStep_CloneIsIndependent(t *testing.T) {
	s := domain.StepOf("List", []string{"x", "y"})
	c := s.Clone()

	items, _ := c.Items("List")
	items[0] = "changed"
	c.Set("New", "v")

	orig, _ := s.Items("List")
	assert.Equal(t, "x", orig[0])
	assert.False(t, s.Has("New"))
}
