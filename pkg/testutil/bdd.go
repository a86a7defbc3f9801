package testutil

import "testing"

// Step is one phase of a scenario-style test.
type Step func(t *testing.T)

// Given, When, Then and And nest subtests so a scenario reads as
// "Given_a_file/When_it_is_loaded_twice/Then_...". Each returns whether its
// step passed.
func Given(t *testing.T, desc string, fn Step) bool {
	t.Helper()
	return step(t, "Given", desc, fn)
}

func When(t *testing.T, desc string, fn Step) bool {
	t.Helper()
	return step(t, "When", desc, fn)
}

func Then(t *testing.T, desc string, fn Step) bool {
	t.Helper()
	return step(t, "Then", desc, fn)
}

func And(t *testing.T, desc string, fn Step) bool {
	t.Helper()
	return step(t, "And", desc, fn)
}

func step(t *testing.T, keyword, desc string, fn Step) bool {
	t.Helper()
	return t.Run(keyword+" "+desc, fn)
}
