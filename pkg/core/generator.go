// pkg/core/generator.go
package core

// GeneratorEnvVars are the process variables an orchestrator may use to
// announce its CMake generator, in lookup order
var GeneratorEnvVars = []string{"SPACK_CMAKE_GENERATOR", "SPACKDEV_GENERATOR"}

// ResolveGenerator picks the CMake generator once, at the program boundary.
// An explicit flag wins, then the config file, then the orchestrator's
// environment variables read through lookup (usually os.LookupEnv).
func ResolveGenerator(flag string, cfg *Config, lookup func(string) (string, bool)) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.Generator != "" {
		return cfg.Generator
	}
	if lookup == nil {
		return ""
	}
	for _, name := range GeneratorEnvVars {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}
