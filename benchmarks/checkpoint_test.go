package benchmarks

import (
	"path/filepath"
	"testing"

	"primescan/pkg/primescan/checkpoint"
)

func benchProgress(i int) checkpoint.Progress {
	return checkpoint.Progress{
		Count:          i,
		ElapsedSeconds: float64(i) / 100,
		Timestamp:      checkpoint.Now(),
	}
}

// BenchmarkFileStore_Save measures the atomic write-and-rename path.
func BenchmarkFileStore_Save(b *testing.B) {
	store := checkpoint.NewFileStore(filepath.Join(b.TempDir(), "bench.json"))
	defer store.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Save(benchProgress(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFileStore_Load measures checkpoint reads.
func BenchmarkFileStore_Load(b *testing.B) {
	store := checkpoint.NewFileStore(filepath.Join(b.TempDir(), "bench.json"))
	defer store.Close()
	if err := store.Save(benchProgress(1000)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.Load(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSQLiteStore_Save measures the single-statement upsert.
func BenchmarkSQLiteStore_Save(b *testing.B) {
	store, err := checkpoint.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"), checkpoint.ClassSequential)
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Save(benchProgress(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSQLiteStore_Load measures checkpoint reads from SQLite.
func BenchmarkSQLiteStore_Load(b *testing.B) {
	store, err := checkpoint.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"), checkpoint.ClassSequential)
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	if err := store.Save(benchProgress(1000)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.Load(); err != nil {
			b.Fatal(err)
		}
	}
}
