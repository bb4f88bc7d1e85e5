package dockerfile

import "reflect"

// Crunch merges adjacent shell-form RUN instructions into single
// multi-command RUN instructions, reducing the number of image layers a
// build produces without changing the order or set of commands executed.
//
// Adjacency is purely positional: any non-RUN instruction (including a
// comment) is a merge barrier. Exec-form RUNs are never merged, since the
// exec form bypasses the shell and cannot be chained with "&&".
//
// A single left-to-right pass merges each RUN into the most recently
// accumulated instruction. The pass is repeated until it produces no
// change; each pass either strictly shrinks the instruction count or
// leaves it unchanged, so the loop terminates. Crunch is idempotent:
// Crunch(Crunch(d)) == Crunch(d).
func Crunch(d Dockerfile) Dockerfile {
	for {
		next := crunchPass(d)
		if reflect.DeepEqual(next, d) {
			return next
		}
		d = next
	}
}

func crunchPass(d Dockerfile) Dockerfile {
	out := make(Dockerfile, 0, len(d))
	for _, ins := range d {
		run, ok := ins.(Run)
		if !ok || len(out) == 0 {
			out = append(out, ins)
			continue
		}
		prev, ok := out[len(out)-1].(Run)
		if !ok {
			out = append(out, ins)
			continue
		}
		merged, ok := mergeRuns(prev, run)
		if !ok {
			out = append(out, ins)
			continue
		}
		out[len(out)-1] = merged
	}
	return out
}

func mergeRuns(a, b Run) (Run, bool) {
	left, ok := shellCommands(a.Cmd)
	if !ok {
		return Run{}, false
	}
	right, ok := shellCommands(b.Cmd)
	if !ok {
		return Run{}, false
	}
	cmds := make([]string, 0, len(left)+len(right))
	cmds = append(cmds, left...)
	cmds = append(cmds, right...)
	return Run{Cmd: ShellCommands(cmds...)}, true
}

// shellCommands flattens a shell-form command to its command list. Exec
// form reports false.
func shellCommands(c Command) ([]string, bool) {
	switch c.Kind {
	case CommandShell:
		return []string{c.Shell}, true
	case CommandShells:
		return c.Shells, true
	}
	return nil, false
}
