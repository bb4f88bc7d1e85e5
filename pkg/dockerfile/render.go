package dockerfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendering is total: malformed content (an empty exec array, an empty
// volume list) degrades to a syntactically inert line instead of failing.
// Callers that need strict validation must check contents up front.

// continuation joins chained shell commands into one logical RUN.
const continuation = " && \\\n  "

func (c Command) render() string {
	switch c.Kind {
	case CommandShell:
		return c.Shell
	case CommandShells:
		return strings.Join(c.Shells, continuation)
	case CommandExec:
		if len(c.Exec) == 0 {
			return ""
		}
		return quotedArray(c.Exec)
	}
	return ""
}

func quotedArray(args []string) string {
	if len(args) == 0 {
		return "[ ]"
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = strconv.Quote(a)
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

func (c Comment) Render() string {
	return "# " + c.Text
}

func (d Directive) Render() string {
	return fmt.Sprintf("# %s=%s", d.Name, d.Value)
}

func (f From) Render() string {
	s := "FROM " + f.Image
	switch {
	case f.Digest != "":
		s += "@" + f.Digest
	case f.Tag != "":
		s += ":" + f.Tag
	}
	if f.Alias != "" {
		s += " AS " + f.Alias
	}
	return s
}

func (m Maintainer) Render() string {
	return "MAINTAINER " + m.Name
}

func (r Run) Render() string {
	return "RUN " + r.Cmd.render()
}

func (c Cmd) Render() string {
	return "CMD " + c.Cmd.render()
}

func (e Entrypoint) Render() string {
	return "ENTRYPOINT " + e.Cmd.render()
}

func (e Expose) Render() string {
	ports := make([]string, len(e.Ports))
	for i, p := range e.Ports {
		ports[i] = strconv.Itoa(p)
	}
	return "EXPOSE " + strings.Join(ports, " ")
}

func (e Env) Render() string {
	// A lone pair keeps the legacy space-separated unquoted form; multiple
	// pairs use the quoted KEY="VALUE" form. Both forms must round-trip
	// byte-for-byte for downstream consumers, so neither is normalized.
	if len(e.Pairs) == 1 {
		return fmt.Sprintf("ENV %s %s", e.Pairs[0].Key, e.Pairs[0].Value)
	}
	return "ENV " + renderPairs(e.Pairs)
}

func (l Label) Render() string {
	return "LABEL " + renderPairs(l.Pairs)
}

func renderPairs(pairs []KV) string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = fmt.Sprintf("%s=%s", p.Key, strconv.Quote(p.Value))
	}
	return strings.Join(out, " ")
}

func (a Add) Render() string {
	return "ADD " + strings.Join(append(append([]string{}, a.Src...), a.Dst), " ")
}

func (c Copy) Render() string {
	s := "COPY "
	if c.Stage != "" {
		s += "--from=" + c.Stage + " "
	}
	return s + strings.Join(append(append([]string{}, c.Src...), c.Dst), " ")
}

func (u User) Render() string {
	return "USER " + u.Name
}

func (w Workdir) Render() string {
	return "WORKDIR " + w.Path
}

func (v Volume) Render() string {
	return "VOLUME " + quotedArray(v.Paths)
}

func (s Shell) Render() string {
	return "SHELL " + quotedArray(s.Args)
}

func (o Onbuild) Render() string {
	return "ONBUILD " + o.Inner.Render()
}

// Render produces the canonical text of the Dockerfile, one instruction
// per line in sequence order.
func (d Dockerfile) Render() string {
	lines := make([]string, len(d))
	for i, ins := range d {
		lines[i] = ins.Render()
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (d Dockerfile) String() string {
	return d.Render()
}
