package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `system_prefixes:
  - /usr
  - /bin
sanitize_vars:
  - PATH
  - LD_LIBRARY_PATH
format: sh
`

func testOptions(t *testing.T, environ ...string) *options {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0644))

	opts := newOptions()
	opts.cfgFile = cfg
	opts.environ = func() []string { return environ }
	opts.lookupEnv = func(k string) (string, bool) {
		for _, kv := range environ {
			if name, value, ok := strings.Cut(kv, "="); ok && name == k {
				return value, true
			}
		}
		return "", false
	}
	return opts
}

func run(t *testing.T, opts *options, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(opts)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSanitize_ProcessEnvironment(t *testing.T) {
	opts := testOptions(t,
		"PATH=/opt/pkg/bin:/usr/bin:/opt/pkg/bin:/bin",
		"CET_PLUGIN_PATH=/usr/lib:/opt/art/lib",
		"HOME=/home/me",
	)

	out, err := run(t, opts, "sanitize", "PATH", "CET_PLUGIN_PATH", "ROOT_INCLUDE_PATH")
	require.NoError(t, err)
	assert.Equal(t, "export PATH=/opt/pkg/bin:/usr/bin:/bin\nexport CET_PLUGIN_PATH=/opt/art/lib:/usr/lib\n", out)
}

func TestSanitize_DefaultVars(t *testing.T) {
	opts := testOptions(t,
		"LD_LIBRARY_PATH=/usr/lib:/opt/root/lib:/usr/lib",
		"CET_PLUGIN_PATH=/a:/a",
	)

	out, err := run(t, opts, "sanitize")
	require.NoError(t, err)
	assert.Equal(t, "export LD_LIBRARY_PATH=/opt/root/lib:/usr/lib\n", out)
}

func TestSanitize_EnvFile(t *testing.T) {
	path := writeFile(t, "build.env", "PATH=/bin:/opt/x/bin:/bin\n")

	out, err := run(t, testOptions(t), "sanitize", "--env-file", path, "--format", "dotenv", "PATH")
	require.NoError(t, err)
	assert.Equal(t, "PATH=\"/opt/x/bin:/bin\"\n", out)
}

func TestSanitize_BadFormat(t *testing.T) {
	_, err := run(t, testOptions(t), "sanitize", "--format", "fish", "PATH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown environment format")
}

func TestSetup_RunPhaseCsh(t *testing.T) {
	graph := writeFile(t, "icarus.yaml", `package:
  name: icarus-data
  version: "09.26.00"
  prefix: /opt/icd
`)

	out, err := run(t, testOptions(t), "setup", graph, "--phase", "run", "--format", "csh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "setenv ICARUS_DATA_VERSION 'v09_26_00';\n"), out)
	assert.Contains(t, out, "setenv WIRECELL_PATH '/opt/icd/icarus_data/WirecellData';\n")
	assert.Contains(t, out, "setenv PKG_CONFIG_PATH '/opt/icd';\n")
}

func TestSetup_BuildPhaseEmpty(t *testing.T) {
	graph := writeFile(t, "icarus.yaml", "package: {name: icarus-data, prefix: /opt/icd}\n")

	out, err := run(t, testOptions(t), "setup", graph)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSetup_Errors(t *testing.T) {
	_, err := run(t, testOptions(t), "setup", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	graph := writeFile(t, "gallery.yaml", "package: {name: gallery, prefix: /opt/gallery}\n")
	_, err = run(t, testOptions(t), "setup", graph)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency not resolved")

	_, err = run(t, testOptions(t), "setup", graph, "--phase", "install")
	assert.Error(t, err)
}

func TestRecipesList(t *testing.T) {
	out, err := run(t, testOptions(t), "recipes", "list")
	require.NoError(t, err)

	for _, name := range []string{"art-root-io", "dk2nugenie", "gallery", "icarus-data", "larg4", "larsim"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "DEFAULT VERSION")
}

func TestRecipesInfo_Generator(t *testing.T) {
	out, err := run(t, testOptions(t), "recipes", "info", "gallery")
	require.NoError(t, err)
	assert.Contains(t, out, "Package: gallery")
	assert.Contains(t, out, "* develop")
	assert.Contains(t, out, "Source: https://github.com/art-framework-suite/gallery/archive/refs/tags/v1_18_05.tar.gz")
	assert.Contains(t, out, "cxxstd=17 [17, 20, 23]")
	assert.Contains(t, out, "cmake@3.21: (build)")
	assert.NotContains(t, out, "ninja")

	out, err = run(t, testOptions(t), "recipes", "info", "gallery", "--generator", "Ninja")
	require.NoError(t, err)
	assert.Contains(t, out, "ninja@1.10: (build)")

	out, err = run(t, testOptions(t, "SPACK_CMAKE_GENERATOR=Ninja"), "recipes", "info", "gallery")
	require.NoError(t, err)
	assert.Contains(t, out, "ninja@1.10: (build)")
}

func TestRecipesInfo_Unknown(t *testing.T) {
	_, err := run(t, testOptions(t), "recipes", "info", "geant4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe not found")
}

func TestRecipes_UserDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mylib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mylib", "recipe.toml"),
		[]byte("name = \"mylib\"\ndescription = \"site recipe\"\n"), 0644))

	out, err := run(t, testOptions(t), "recipes", "info", "mylib", "--recipes", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Description: site recipe")
}

func TestCMakeArgs(t *testing.T) {
	out, err := run(t, testOptions(t), "cmake-args", "gallery", "--variant", "cxxstd=20")
	require.NoError(t, err)
	assert.Equal(t, "--preset\ndefault\n-DCMAKE_CXX_STANDARD=20\n", out)

	_, err = run(t, testOptions(t), "cmake-args", "gallery", "--variant", "cxxstd")
	assert.Error(t, err)
}

func TestCMakeArgs_Graph(t *testing.T) {
	graph := writeFile(t, "larsim.yaml", `package: {name: larsim, prefix: /opt/larsim}
dependencies:
  - {name: marley, prefix: /opt/marley}
  - {name: genie, version: "3.00.06", prefix: /opt/genie}
  - {name: ifdhc, prefix: /opt/ifdhc}
  - {name: libxml2, prefix: /opt/libxml2}
  - {name: xerces-c, prefix: /opt/xerces}
`)

	out, err := run(t, testOptions(t), "cmake-args", "larsim", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"-DCMAKE_CXX_STANDARD=17",
		"-DMARLEY_INC=/opt/marley/include",
		"-DGENIE_INC=/opt/genie/include",
		"-DGENIE_VERSION=v3_00_06",
		"-DIFDHC_INC=/opt/ifdhc/inc",
		"-DLIBXML2_INC=/opt/libxml2/include",
		"-DXERCEX_C_INC=/opt/xerces/include",
	}, "\n")+"\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, testOptions(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fnalenv version "+appVersion)
	assert.Contains(t, out, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, out, "library path: ")
}

func TestBadConfig(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(opts.cfgFile, []byte("format: ["), 0644))

	_, err := run(t, opts, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestPersistRecipePath(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, persistRecipePath(opts.cfgFile, "/srv/recipes"))

	data, err := os.ReadFile(opts.cfgFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recipe_path: /srv/recipes")
	assert.Contains(t, string(data), "- /usr")
}

func TestRecipesSync_FailedCloneKeepsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	opts := testOptions(t)

	_, err := run(t, opts, "recipes", "sync", "--url", "file:///nonexistent/repo")
	require.Error(t, err)

	data, err := os.ReadFile(opts.cfgFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "recipe_path")

	out, err := run(t, opts, "recipes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "gallery")
}
