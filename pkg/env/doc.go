// pkg/env/doc.go
package env

/*
Package env provides the build and run environments that package recipes
mutate, and the sanitizer that keeps their path-list variables usable.

It handles:
  - Ordered environment variables with prepend/append path helpers
  - Splitting and joining path lists with the platform separator
  - Pruning duplicate path entries and moving system paths last
  - Writing environments out as sh, bash, csh or dotenv text

Basic Usage:

    import "github.com/eflumerf/fnal-art/pkg/env"

    build := env.NewEnvironment()
    build.PrependPath("CET_PLUGIN_PATH", "/opt/gallery/lib")
    build.PrependPath("CET_PLUGIN_PATH", "/usr/lib")
    build.PrependPath("CET_PLUGIN_PATH", "/opt/gallery/lib")

    s := env.NewSanitizer([]string{"/usr", "/bin"})
    s.SanitizeEnvironments([]env.Variables{build}, "CET_PLUGIN_PATH")
    // CET_PLUGIN_PATH=/opt/gallery/lib:/usr/lib

System Paths:

A path is a system path when it equals one of the sanitizer's prefixes or
lies below one of them. The prefix list is always supplied by the caller;
platform.DefaultSystemPrefixes is the usual source.
*/
