package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderSettingsTable(t *testing.T) {
	got := RenderSettingsTable([][2]string{
		{"name", "demo"},
		{"std", "20"},
	})

	assert.Contains(t, got, "KEY")
	assert.Contains(t, got, "VALUE")
	assert.Less(t, strings.Index(got, "name"), strings.Index(got, "std"), "rows keep input order")
	assert.Contains(t, got, "demo")
}

func TestRenderStepTable(t *testing.T) {
	got := RenderStepTable([]StepResult{
		{Name: "cppcheck", Passed: true, Elapsed: 1500 * time.Millisecond},
		{Name: "clang-tidy", Passed: false, Elapsed: 200 * time.Millisecond},
	})

	assert.Contains(t, got, "CHECK")
	assert.Contains(t, got, "cppcheck")
	assert.Contains(t, got, "passed")
	assert.Contains(t, got, "failed")
	assert.Contains(t, got, "1s")
	assert.Contains(t, got, "200ms")
}

func TestTable_Rows(t *testing.T) {
	got := NewTable("A", "B").Row("1", "2").String()
	assert.Contains(t, got, "A")
	assert.Contains(t, got, "2")
}
