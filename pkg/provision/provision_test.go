package provision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/distroforge/distroforge/pkg/distro"
	"github.com/distroforge/distroforge/pkg/python"
)

func TestForFamilyDispatch(t *testing.T) {
	cases := []struct {
		family distro.Family
		want   Manager
	}{
		{distro.FamilyApt, Apt{}},
		{distro.FamilyApk, Apk{}},
		{distro.FamilyZypper, Zypper{}},
		{distro.FamilyPacman, Pacman{}},
		{distro.FamilyCygwin, Cygwin{}},
	}
	for _, tc := range cases {
		mgr, err := ForFamily(tc.family, Options{})
		require.NoError(t, err)
		require.Equal(t, tc.want, mgr)
	}

	mgr, err := ForFamily(distro.FamilyRpm, Options{RpmRebuildDB: true})
	require.NoError(t, err)
	require.Equal(t, Rpm{RebuildDB: true}, mgr)

	_, err = ForFamily(distro.Family(99), Options{})
	require.Error(t, err)
}

func TestAptInstall(t *testing.T) {
	expected := `RUN apt-get -y update
RUN DEBIAN_FRONTEND=noninteractive apt-get -y upgrade
RUN DEBIAN_FRONTEND=noninteractive apt-get -y install --no-install-recommends git rsync
RUN rm -rf /var/lib/apt/lists/*`
	require.Equal(t, expected, Apt{}.Install("git", "rsync").Render())
}

func TestAddUserShape(t *testing.T) {
	for _, mgr := range []Manager{Apt{}, Rpm{}, Apk{}, Zypper{}, Pacman{}} {
		text := mgr.AddUser("build", UserOpts{UID: 1000, Sudo: true}).Render()

		require.Contains(t, text, "NOPASSWD:ALL' > /etc/sudoers.d/build")
		require.Contains(t, text, "chown root:root /etc/sudoers.d/build")
		require.Contains(t, text, "chmod 440 /etc/sudoers.d/build")
		require.Contains(t, text, "mkdir /home/build/.ssh")
		require.Contains(t, text, "chmod 700 /home/build/.ssh")
		require.Contains(t, text, "1000")

		// The fragment ends switched into the account's home.
		lines := strings.Split(text, "\n")
		require.Equal(t, "USER build", lines[len(lines)-2])
		require.Equal(t, "WORKDIR /home/build", lines[len(lines)-1])
	}
}

func TestAddUserWithoutSudo(t *testing.T) {
	text := Apt{}.AddUser("build", UserOpts{}).Render()
	require.NotContains(t, text, "sudoers")
	require.NotContains(t, text, "--uid")
}

func TestRpmQuirkFlags(t *testing.T) {
	plain := Rpm{}.Update().Render()
	require.NotContains(t, plain, "rpm --rebuilddb")
	require.NotContains(t, plain, "config-manager")

	legacy := Rpm{RebuildDB: true}.Update().Render()
	require.True(t, strings.HasPrefix(legacy, "RUN rpm --rebuilddb"))

	extras := Rpm{EnableExtras: true}.Update().Render()
	require.Contains(t, extras, "yum config-manager --set-enabled crb")
}

func TestInstallToolchainSourceBuild(t *testing.T) {
	rel := python.MustRelease("3.12.4")
	for _, mgr := range []Manager{Apt{}, Rpm{}, Apk{}, Zypper{}, Pacman{}} {
		text := mgr.InstallToolchain(rel, ToolchainOpts{Optimize: true}).Render()
		require.Contains(t, text, "curl -fsSL https://www.python.org/ftp/python/3.12.4/Python-3.12.4.tar.xz")
		require.Contains(t, text, "./configure --prefix=/usr/local/python-3.12.4 --with-ensurepip=install --enable-optimizations --with-lto")
		require.Contains(t, text, "make -C /tmp/Python-3.12.4 install")
		require.Contains(t, text, "rm -rf /tmp/python.tar.xz /tmp/Python-*")
	}

	// Without Optimize the PGO flags are absent.
	text := Apt{}.InstallToolchain(rel, ToolchainOpts{}).Render()
	require.NotContains(t, text, "--enable-optimizations")
}

func TestCygwinCommands(t *testing.T) {
	text := Cygwin{}.Install("git", "make").Render()
	require.Contains(t, text, `C:\cygwin64\setup-x86_64.exe`)
	require.Contains(t, text, "--packages git,make")

	user := Cygwin{}.AddUser("build", UserOpts{Sudo: true}).Render()
	require.Contains(t, user, "net user build /add /passwordreq:no")
	require.Contains(t, user, "net localgroup administrators build /add")
	require.Contains(t, user, `WORKDIR C:\Users\build`)

	tc := Cygwin{}.InstallToolchain(python.MustRelease("3.12.4"), ToolchainOpts{}).Render()
	require.Contains(t, tc, "python-3.12.4-amd64.exe")
	require.Contains(t, tc, "/quiet InstallAllUsers=1")
}
