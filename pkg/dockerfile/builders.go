package dockerfile

import "fmt"

// Fragment constructors. Each returns a one-instruction Dockerfile so that
// recipe functions can compose fragments with Join without distinguishing
// single instructions from longer sequences.

// Commentf formats and returns a comment fragment.
func Commentf(format string, a ...interface{}) Dockerfile {
	return Dockerfile{Comment{Text: fmt.Sprintf(format, a...)}}
}

// SyntaxDirective returns a "# syntax=..." parser directive fragment.
func SyntaxDirective(frontend string) Dockerfile {
	return Dockerfile{Directive{Name: "syntax", Value: frontend}}
}

// EscapeDirective returns a "# escape=..." parser directive fragment.
func EscapeDirective(char string) Dockerfile {
	return Dockerfile{Directive{Name: "escape", Value: char}}
}

// FromImage returns a FROM fragment for image with an optional tag.
func FromImage(image, tag string) Dockerfile {
	return Dockerfile{From{Image: image, Tag: tag}}
}

// Maintainerf formats and returns a MAINTAINER fragment.
func Maintainerf(format string, a ...interface{}) Dockerfile {
	return Dockerfile{Maintainer{Name: fmt.Sprintf(format, a...)}}
}

// Runf formats a single shell command into a RUN fragment.
func Runf(format string, a ...interface{}) Dockerfile {
	return Dockerfile{Run{Cmd: ShellCommand(fmt.Sprintf(format, a...))}}
}

// RunShells returns a RUN fragment chaining the given commands.
func RunShells(cmds ...string) Dockerfile {
	return Dockerfile{Run{Cmd: ShellCommands(cmds...)}}
}

// RunExec returns an exec-form RUN fragment.
func RunExec(args ...string) Dockerfile {
	return Dockerfile{Run{Cmd: ExecCommand(args...)}}
}

// CmdExec returns an exec-form CMD fragment.
func CmdExec(args ...string) Dockerfile {
	return Dockerfile{Cmd{Cmd: ExecCommand(args...)}}
}

// EntrypointExec returns an exec-form ENTRYPOINT fragment.
func EntrypointExec(args ...string) Dockerfile {
	return Dockerfile{Entrypoint{Cmd: ExecCommand(args...)}}
}

// ExposePorts returns an EXPOSE fragment.
func ExposePorts(ports ...int) Dockerfile {
	return Dockerfile{Expose{Ports: ports}}
}

// EnvPair returns a single-pair ENV fragment (legacy unquoted form).
func EnvPair(key, value string) Dockerfile {
	return Dockerfile{Env{Pairs: []KV{{Key: key, Value: value}}}}
}

// EnvPairs returns a multi-pair ENV fragment (quoted form).
func EnvPairs(pairs ...KV) Dockerfile {
	return Dockerfile{Env{Pairs: pairs}}
}

// LabelPairs returns a LABEL fragment.
func LabelPairs(pairs ...KV) Dockerfile {
	return Dockerfile{Label{Pairs: pairs}}
}

// AddFiles returns an ADD fragment copying sources to dst.
func AddFiles(dst string, src ...string) Dockerfile {
	return Dockerfile{Add{Src: src, Dst: dst}}
}

// CopyFiles returns a COPY fragment copying sources to dst.
func CopyFiles(dst string, src ...string) Dockerfile {
	return Dockerfile{Copy{Src: src, Dst: dst}}
}

// CopyFromStage returns a COPY fragment taking sources from an earlier
// build stage, referenced by index or alias.
func CopyFromStage(stage, dst string, src ...string) Dockerfile {
	return Dockerfile{Copy{Src: src, Dst: dst, Stage: stage}}
}

// UserName returns a USER fragment.
func UserName(name string) Dockerfile {
	return Dockerfile{User{Name: name}}
}

// WorkdirPath returns a WORKDIR fragment.
func WorkdirPath(format string, a ...interface{}) Dockerfile {
	return Dockerfile{Workdir{Path: fmt.Sprintf(format, a...)}}
}

// Volumes returns a VOLUME fragment.
func Volumes(paths ...string) Dockerfile {
	return Dockerfile{Volume{Paths: paths}}
}

// ShellOverride returns a SHELL fragment replacing the default shell.
func ShellOverride(args ...string) Dockerfile {
	return Dockerfile{Shell{Args: args}}
}

// OnbuildWrap wraps a single instruction in ONBUILD.
func OnbuildWrap(inner Instruction) Dockerfile {
	return Dockerfile{Onbuild{Inner: inner}}
}

// Empty is the identity fragment for Join.
func Empty() Dockerfile {
	return Dockerfile{}
}
