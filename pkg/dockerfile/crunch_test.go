package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// flattenRuns extracts the shell commands of all run instructions in
// execution order, one entry per command regardless of chaining.
func flattenRuns(d Dockerfile) []string {
	var out []string
	for _, ins := range d {
		run, ok := ins.(Run)
		if !ok {
			continue
		}
		if cmds, ok := shellCommands(run.Cmd); ok {
			out = append(out, cmds...)
		}
	}
	return out
}

func nonRuns(d Dockerfile) Dockerfile {
	var out Dockerfile
	for _, ins := range d {
		if _, ok := ins.(Run); !ok {
			out = append(out, ins)
		}
	}
	return out
}

func TestCrunchMergesAdjacentRuns(t *testing.T) {
	df := Join(Runf("a"), Runf("b"), Runf("c"))
	crunched := Crunch(df)
	require.Len(t, crunched, 1)
	run, ok := crunched[0].(Run)
	require.True(t, ok)
	require.Equal(t, CommandShells, run.Cmd.Kind)
	require.Equal(t, []string{"a", "b", "c"}, run.Cmd.Shells)
}

func TestCrunchMergeForms(t *testing.T) {
	// shell+shell, list+shell, shell+list, list+list all merge into one
	// ordered list.
	df := Join(
		RunShells("a", "b"),
		Runf("c"),
		RunShells("d", "e"),
	)
	crunched := Crunch(df)
	require.Len(t, crunched, 1)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, crunched[0].(Run).Cmd.Shells)
}

func TestCrunchBarrier(t *testing.T) {
	df := Join(Runf("a"), Commentf("x"), Runf("b"))
	require.Equal(t, df, Crunch(df))
}

func TestCrunchDoesNotMergeExec(t *testing.T) {
	df := Join(Runf("a"), RunExec("sh", "-c", "b"), Runf("c"))
	crunched := Crunch(df)
	require.Len(t, crunched, 3)
}

func TestCrunchIdempotent(t *testing.T) {
	fixtures := []Dockerfile{
		{},
		Join(Runf("a")),
		Join(Runf("a"), Runf("b"), Runf("c"), Runf("d")),
		Join(FromImage("debian", "bookworm"), Runf("a"), Runf("b"), Commentf("x"), Runf("c")),
		Join(Runf("a"), RunExec("b"), Runf("c"), Runf("d")),
	}
	for _, df := range fixtures {
		once := Crunch(df)
		require.Equal(t, once, Crunch(once))
	}
}

func TestCrunchPreservesOrderAndCommands(t *testing.T) {
	df := Join(
		Commentf("hdr"),
		FromImage("debian", "bookworm"),
		Runf("a"),
		Runf("b"),
		EnvPair("K", "v"),
		Runf("c"),
		RunShells("d", "e"),
		UserName("build"),
		Runf("f"),
	)
	crunched := Crunch(df)
	require.Equal(t, nonRuns(df), nonRuns(crunched))
	require.Equal(t, flattenRuns(df), flattenRuns(crunched))
	// Three run groups remain, split by the ENV and USER barriers.
	require.Len(t, crunched, 7)
}
