package fixture_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/submatch/fixture"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesScenario(t *testing.T) {
	const raw = `CC
overlap=1 permute=0
CCCC
(a1 a2)
(a2 a3)
(a3 a4)
()
`
	s, err := fixture.Load(strings.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "CC", s.Pattern)
	require.Equal(t, "overlap=1 permute=0", s.Options)
	require.Equal(t, "CCCC", s.Target)
	require.Equal(t, [][]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a4"}}, s.Expected)
}

func TestLoadAcceptsImmediateExhaustion(t *testing.T) {
	const raw = "CN\nany\nCCO\n()\n"
	s, err := fixture.Load(strings.NewReader(raw))
	require.NoError(t, err)
	require.Empty(t, s.Expected)
}

func TestLoadRejectsTruncatedScenario(t *testing.T) {
	const raw = "CC\noverlap=1 permute=0\nCCCC\n(a1 a2)\n"
	_, err := fixture.Load(strings.NewReader(raw))
	require.ErrorIs(t, err, fixture.ErrTruncated)
}

func TestLoadRejectsShortHeader(t *testing.T) {
	const raw = "CC\noverlap=1 permute=0\n"
	_, err := fixture.Load(strings.NewReader(raw))
	require.ErrorIs(t, err, fixture.ErrMalformedHeader)
}

func TestLoadRejectsMalformedMatchLine(t *testing.T) {
	const raw = "CC\noverlap=1 permute=0\nCCCC\na1 a2\n()\n"
	_, err := fixture.Load(strings.NewReader(raw))
	require.ErrorIs(t, err, fixture.ErrMalformedMatchLine)
}

func TestWriteRoundTrips(t *testing.T) {
	s := &fixture.Scenario{
		Pattern:  "CC",
		Options:  "overlap=0 permute=0",
		Target:   "CCCC",
		Expected: [][]string{{"a1", "a2"}, {"a3", "a4"}},
	}

	var buf strings.Builder
	require.NoError(t, s.Write(&buf))

	got, err := fixture.Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, s, got)
}
