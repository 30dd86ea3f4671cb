package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutlang/sqfront/report"
	"github.com/nutlang/sqfront/token"
)

func TestReportAccumulates(t *testing.T) {
	t.Parallel()

	var r report.Report
	assert.False(t, r.HasErrors())

	r.Errorf("unexpected-token", "expected %s, found %s", "identifier", "';'")
	require.Equal(t, 1, r.Len())
	assert.True(t, r.HasErrors())
	assert.Equal(t, "expected identifier, found ';'", r.Diagnostics()[0].Message)
}

func TestDiagnosticPrimaryPrefersFlaggedAnnotation(t *testing.T) {
	t.Parallel()

	d := &report.Diagnostic{
		Annotations: []report.Annotation{
			{Span: report.Span{File: "a.nut", Range: token.Range{Start: 0, End: 1}}},
			{Span: report.Span{File: "a.nut", Range: token.Range{Start: 5, End: 6}}, Primary: true},
		},
	}
	assert.Equal(t, 5, d.Primary().Range.Start)
}
