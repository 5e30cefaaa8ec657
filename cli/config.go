package cli

import (
	"os"
	"regexp"
	"strings"
)

var (
	// EnvTrue are the values considered "true" when reading [Settings] from the environment, and can be changed.
	EnvTrue = []string{"1", "yes", "true", "on"}
	// EnvFalse are the values considered "false" when reading [Settings] from the environment, and can be changed.
	EnvFalse = []string{"0", "no", "false", "off"}

	envPrefixCleanse = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Settings change how an [Application] behaves at runtime, without changing its commands.
type Settings struct {
	// Debug sends debug logs about command resolution to the [Printer].
	Debug bool
	// LenientArgs tolerates missing required arguments and surplus arguments when binding.
	// Note that this also makes every default command accept any tokens.
	LenientArgs bool
}

// LoadSettings reads [Settings] from environment variables starting with prefix.
// The prefix is upper-cased, and runs of anything other than letters and digits become an underscore, so an application named "my-cli" reads MY_CLI_DEBUG and MY_CLI_LENIENT_ARGS.
// Variable names are compared case-insensitive, and values that are unset, empty, or not in [EnvTrue] or [EnvFalse] leave the default (false).
func LoadSettings(prefix string) Settings {
	prefix = envPrefix(prefix)
	env := getEnv()
	return Settings{
		Debug:       envBool(env, prefix+"DEBUG", false),
		LenientArgs: envBool(env, prefix+"LENIENT_ARGS", false),
	}
}

func envPrefix(prefix string) string {
	prefix = strings.Trim(envPrefixCleanse.ReplaceAllString(strings.ToUpper(prefix), "_"), "_")
	if len(prefix) == 0 {
		return ""
	}
	return prefix + "_"
}

func getEnv() map[string]string {
	envMap := map[string]string{}
	for _, entry := range os.Environ() {
		key, val, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

func envBool(env map[string]string, key string, defaultVal bool) bool {
	val := strings.ToLower(strings.TrimSpace(env[strings.ToLower(key)]))
	if len(val) == 0 {
		return defaultVal
	}
	for _, t := range EnvTrue {
		if val == strings.ToLower(t) {
			return true
		}
	}
	for _, f := range EnvFalse {
		if val == strings.ToLower(f) {
			return false
		}
	}
	return defaultVal
}
