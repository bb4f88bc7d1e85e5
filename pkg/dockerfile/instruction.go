// Package dockerfile provides a typed model of Dockerfile instructions, a
// canonical renderer for them, and the Crunch transformation that merges
// adjacent RUN instructions to reduce emitted image layers.
package dockerfile

// Instruction is a single Dockerfile instruction. The set of concrete
// instruction types is closed; every one of them renders to exactly one
// logical line of output (a multi-command RUN spans several physical lines
// joined by continuations, but is still one instruction).
type Instruction interface {
	Render() string

	// instruction keeps the variant set closed to this package.
	instruction()
}

// CommandKind discriminates the three forms a RUN/CMD/ENTRYPOINT payload
// can take.
type CommandKind int

const (
	// CommandShell is a single shell string, run via the image shell.
	CommandShell CommandKind = iota
	// CommandShells is a list of shell strings chained with "&&" and
	// line continuations, still forming a single instruction.
	CommandShells
	// CommandExec is the exec-array form, rendered as a quoted array.
	CommandExec
)

// Command is the payload of a RUN, CMD or ENTRYPOINT instruction.
type Command struct {
	Kind   CommandKind
	Shell  string
	Shells []string
	Exec   []string
}

// ShellCommand returns the single-shell-string form.
func ShellCommand(cmd string) Command {
	return Command{Kind: CommandShell, Shell: cmd}
}

// ShellCommands returns the chained multi-command form.
func ShellCommands(cmds ...string) Command {
	return Command{Kind: CommandShells, Shells: cmds}
}

// ExecCommand returns the exec-array form.
func ExecCommand(args ...string) Command {
	return Command{Kind: CommandExec, Exec: args}
}

// KV is an ordered key/value pair used by ENV and LABEL instructions.
// Rendering order follows slice order, so output is deterministic.
type KV struct {
	Key   string
	Value string
}

// Comment renders as "# text".
type Comment struct {
	Text string
}

// Directive is a parser directive such as "# syntax=..." or "# escape=`".
// Directives are only honored by Docker when they appear before the first
// instruction; placement is the caller's responsibility.
type Directive struct {
	Name  string
	Value string
}

// From opens a build stage. Digest takes precedence over Tag when both are
// set. Alias names the stage for later --from references.
type From struct {
	Image  string
	Tag    string
	Digest string
	Alias  string
}

// Maintainer renders the deprecated MAINTAINER instruction, kept for
// compatibility with consumers that still read it.
type Maintainer struct {
	Name string
}

// Run executes a command at build time.
type Run struct {
	Cmd Command
}

// Cmd sets the default container command.
type Cmd struct {
	Cmd Command
}

// Entrypoint sets the container entry point.
type Entrypoint struct {
	Cmd Command
}

// Expose declares listening ports.
type Expose struct {
	Ports []int
}

// Env sets environment variables. A single pair renders unquoted as
// "ENV KEY value"; two or more pairs render as `ENV K1="V1" K2="V2"`.
// The asymmetry is deliberate and pinned by tests.
type Env struct {
	Pairs []KV
}

// Label attaches metadata pairs, always rendered quoted.
type Label struct {
	Pairs []KV
}

// Add copies sources (with tar/URL semantics) to Dst.
type Add struct {
	Src []string
	Dst string
}

// Copy copies sources to Dst. Stage, when non-empty, is a stage index or
// alias emitted as a --from flag for multi-stage artifact hand-off.
type Copy struct {
	Src   []string
	Dst   string
	Stage string
}

// User switches the account subsequent instructions run as.
type User struct {
	Name string
}

// Workdir sets the working directory.
type Workdir struct {
	Path string
}

// Volume declares mount points, always rendered in array form.
type Volume struct {
	Paths []string
}

// Shell overrides the default shell used for shell-form commands.
type Shell struct {
	Args []string
}

// Onbuild defers its wrapped instruction to dependent builds. The model is
// a tree, so the wrapped value cannot cycle back.
type Onbuild struct {
	Inner Instruction
}

func (Comment) instruction()    {}
func (Directive) instruction()  {}
func (From) instruction()       {}
func (Maintainer) instruction() {}
func (Run) instruction()        {}
func (Cmd) instruction()        {}
func (Entrypoint) instruction() {}
func (Expose) instruction()     {}
func (Env) instruction()        {}
func (Label) instruction()      {}
func (Add) instruction()        {}
func (Copy) instruction()       {}
func (User) instruction()       {}
func (Workdir) instruction()    {}
func (Volume) instruction()     {}
func (Shell) instruction()      {}
func (Onbuild) instruction()    {}

// Dockerfile is an ordered sequence of instructions forming one buildable
// unit. Order is build-execution order; every transformation preserves it.
type Dockerfile []Instruction

// Append returns a new Dockerfile with the given instructions appended.
func (d Dockerfile) Append(ins ...Instruction) Dockerfile {
	out := make(Dockerfile, 0, len(d)+len(ins))
	out = append(out, d...)
	return append(out, ins...)
}

// Join concatenates fragments in order into a single Dockerfile.
func Join(frags ...Dockerfile) Dockerfile {
	n := 0
	for _, f := range frags {
		n += len(f)
	}
	out := make(Dockerfile, 0, n)
	for _, f := range frags {
		out = append(out, f...)
	}
	return out
}

// Stages counts the build stages (FROM instructions) in the Dockerfile.
func (d Dockerfile) Stages() int {
	n := 0
	for _, ins := range d {
		if _, ok := ins.(From); ok {
			n++
		}
	}
	return n
}
