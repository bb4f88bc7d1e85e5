package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderFrom(t *testing.T) {
	require.Equal(t, "FROM debian", From{Image: "debian"}.Render())
	require.Equal(t, "FROM debian:bookworm", From{Image: "debian", Tag: "bookworm"}.Render())
	require.Equal(t, "FROM debian@sha256:abc", From{Image: "debian", Digest: "sha256:abc"}.Render())
	// Digest wins over tag when both are set.
	require.Equal(t, "FROM debian@sha256:abc", From{Image: "debian", Tag: "bookworm", Digest: "sha256:abc"}.Render())
	require.Equal(t, "FROM debian:bookworm AS build", From{Image: "debian", Tag: "bookworm", Alias: "build"}.Render())
}

func TestRenderRunForms(t *testing.T) {
	require.Equal(t, "RUN apt-get update", Run{Cmd: ShellCommand("apt-get update")}.Render())
	require.Equal(t, "RUN a && \\\n  b && \\\n  c", Run{Cmd: ShellCommands("a", "b", "c")}.Render())
	require.Equal(t, `RUN [ "sh", "-c", "echo hi" ]`, Run{Cmd: ExecCommand("sh", "-c", "echo hi")}.Render())
}

func TestRenderEnvSingleVersusMulti(t *testing.T) {
	// A single pair uses the legacy unquoted space form; two or more
	// pairs use the quoted form. The asymmetry is load-bearing for
	// byte-compatibility and must not be normalized.
	single := Env{Pairs: []KV{{Key: "PATH", Value: "/usr/local/bin:$PATH"}}}
	require.Equal(t, "ENV PATH /usr/local/bin:$PATH", single.Render())

	multi := Env{Pairs: []KV{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}}
	require.Equal(t, `ENV A="1" B="2"`, multi.Render())
}

func TestRenderLabelAlwaysQuoted(t *testing.T) {
	// Unlike ENV, a single LABEL pair is still quoted.
	require.Equal(t, `LABEL maintainer="infra"`, Label{Pairs: []KV{{Key: "maintainer", Value: "infra"}}}.Render())
	require.Equal(t, `LABEL a="1" b="2"`, Label{Pairs: []KV{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}}.Render())
}

func TestRenderVolume(t *testing.T) {
	require.Equal(t, `VOLUME [ "/data" ]`, Volume{Paths: []string{"/data"}}.Render())
	require.Equal(t, `VOLUME [ "/a", "/b" ]`, Volume{Paths: []string{"/a", "/b"}}.Render())
	// An empty volume list still renders a syntactically valid array.
	require.Equal(t, "VOLUME [ ]", Volume{}.Render())
}

func TestRenderEmptyExecIsDegenerateNotFatal(t *testing.T) {
	require.Equal(t, "ENTRYPOINT ", Entrypoint{Cmd: ExecCommand()}.Render())
	require.Equal(t, "CMD ", Cmd{Cmd: ExecCommand()}.Render())
}

func TestRenderAddCopy(t *testing.T) {
	require.Equal(t, "ADD a.tar b.tar /opt", Add{Src: []string{"a.tar", "b.tar"}, Dst: "/opt"}.Render())
	require.Equal(t, "COPY src /dst", Copy{Src: []string{"src"}, Dst: "/dst"}.Render())
	require.Equal(t, "COPY --from=0 /usr/local/bin/tool /usr/local/bin/tool",
		Copy{Src: []string{"/usr/local/bin/tool"}, Dst: "/usr/local/bin/tool", Stage: "0"}.Render())
	require.Equal(t, "COPY --from=build /out /out",
		Copy{Src: []string{"/out"}, Dst: "/out", Stage: "build"}.Render())
}

func TestRenderOnbuild(t *testing.T) {
	ins := Onbuild{Inner: Run{Cmd: ShellCommand("make")}}
	require.Equal(t, "ONBUILD RUN make", ins.Render())
}

func TestRenderMisc(t *testing.T) {
	require.Equal(t, "# a comment", Comment{Text: "a comment"}.Render())
	require.Equal(t, "# syntax=docker/dockerfile:1", Directive{Name: "syntax", Value: "docker/dockerfile:1"}.Render())
	require.Equal(t, "MAINTAINER infra", Maintainer{Name: "infra"}.Render())
	require.Equal(t, "EXPOSE 80 443", Expose{Ports: []int{80, 443}}.Render())
	require.Equal(t, "USER build", User{Name: "build"}.Render())
	require.Equal(t, "WORKDIR /home/build", Workdir{Path: "/home/build"}.Render())
	require.Equal(t, `SHELL [ "/usr/bin/linux32", "/bin/sh", "-c" ]`, Shell{Args: []string{"/usr/bin/linux32", "/bin/sh", "-c"}}.Render())
}

func TestRenderDockerfile(t *testing.T) {
	df := Join(
		Commentf("generated"),
		FromImage("alpine", "3.20"),
		Runf("apk add %s", "git"),
		EnvPair("LANG", "C.UTF-8"),
		EntrypointExec("sh"),
	)
	expected := `# generated
FROM alpine:3.20
RUN apk add git
ENV LANG C.UTF-8
ENTRYPOINT [ "sh" ]`
	require.Equal(t, expected, df.Render())
	require.Equal(t, expected, df.String())
}

func TestJoinAndAppendDoNotAlias(t *testing.T) {
	a := Runf("a")
	b := Runf("b")
	joined := Join(a, b)
	appended := a.Append(b[0])
	require.Len(t, joined, 2)
	require.Equal(t, joined, appended)
	// The source fragments are unchanged.
	require.Len(t, a, 1)
	require.Len(t, b, 1)
}

func TestStages(t *testing.T) {
	df := Join(FromImage("debian", "bookworm"), Runf("true"), FromImage("debian", "bookworm"))
	require.Equal(t, 2, df.Stages())
	require.Equal(t, 0, Dockerfile{}.Stages())
}
