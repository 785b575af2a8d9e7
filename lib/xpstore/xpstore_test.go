package xpstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func freshSnapshot() Snapshot { return Snapshot{} }

func TestReferenceDate(t *testing.T) {
	cases := []struct {
		name     string
		snapshot Snapshot
		expected string
	}{
		{
			name:     "empty snapshot",
			snapshot: Snapshot{},
			expected: "",
		},
		{
			name: "all characters empty",
			snapshot: Snapshot{
				"Alice": DayChanges{},
				"Bob":   DayChanges{},
			},
			expected: "",
		},
		{
			name: "latest across characters",
			snapshot: Snapshot{
				"Alice": DayChanges{"2024-01-01": "+10", "2024-01-02": "+100"},
				"Bob":   DayChanges{"2024-01-01": "+50"},
			},
			expected: "2024-01-02",
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.snapshot.ReferenceDate())
		})
	}
}

func TestChanged(t *testing.T) {
	base := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+100"},
		"Bob":   DayChanges{},
	}

	// reflexive
	require.False(t, Changed(base, base))

	same := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+100"},
		"Bob":   DayChanges{},
	}
	require.False(t, Changed(base, same))

	// nil and empty histories are the same thing
	nilBob := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+100"},
		"Bob":   nil,
	}
	require.False(t, Changed(base, nilBob))

	differentValue := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+101"},
		"Bob":   DayChanges{},
	}
	require.True(t, Changed(base, differentValue))

	newDate := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+100", "2024-01-03": "+5"},
		"Bob":   DayChanges{},
	}
	require.True(t, Changed(base, newDate))

	newCharacter := Snapshot{
		"Alice": DayChanges{"2024-01-02": "+100"},
		"Bob":   DayChanges{},
		"Carol": DayChanges{},
	}
	require.True(t, Changed(base, newCharacter))
}

func TestFileRepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xp_log.json")
	repo := NewFileRepository(path, freshSnapshot)

	require.False(t, repo.Exists())
	require.Equal(t, Snapshot{}, repo.Load())

	snap := Snapshot{
		"Alice": DayChanges{"2024-03-10": "+1,200"},
		"Bob":   DayChanges{},
	}
	require.NoError(t, repo.Save(snap))
	require.True(t, repo.Exists())
	require.Equal(t, snap, repo.Load())

	// corrupt state falls back to fresh instead of failing
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	require.Equal(t, Snapshot{}, repo.Load())
}

func TestFileRepositoryBestRecords(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		filepath.Join(dir, "best_daily_xp.json"),
		func() BestRecords { return BestRecords{} },
	)

	bests := BestRecords{
		"Alice": {XP: 1200, Date: "2024-03-10"},
	}
	require.NoError(t, repo.Save(bests))
	require.Equal(t, bests, repo.Load())
}

func TestReadCharacterList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.txt")

	names, err := ReadCharacterList(path)
	require.NoError(t, err)
	require.Empty(t, names)

	content := "Alice\n\n  Bob  \n\nCarol\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	names, err = ReadCharacterList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
}
