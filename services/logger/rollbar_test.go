package logsvc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/record"
)

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	l := &RollbarLogger{std: log.New(&buf, "", 0)}

	l.Error("Error fetching student records", errors.New("connection refused"))
	// pkg/errors values print their stack after the message
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Error fetching student records\nconnection refused\n"), out)
	assert.Contains(t, out, "TestRollbarLogger_print")

	buf.Reset()
	l.Info("Application stopped")
	assert.Equal(t, "Application stopped\n", buf.String())
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := NewNopLogger()
	bErr := &record.BatchError{Op: record.OpCreate, Table: record.TableGrade, Message: "invalid score", Failed: 1}

	got := l.prepare("Failed to create 1 grade records", []interface{}{bErr})
	assert.Equal(t, []interface{}{
		"Failed to create 1 grade records",
		bErr,
		map[string]interface{}{"op": "create", "table": "grade", "failed": 1, "succeeded": 0},
	}, got)
}
