package config

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey turns ENV_STYLE_KEY into a dotted koanf path, reusing the
// spelling of every segment that already exists in the loaded YAML tree.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var path []string
	node := known

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := lookupSegment(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

// lookupSegment returns the existing key matching segment, ignoring case and
// punctuation, together with its subtree. Unknown segments come back unchanged.
func lookupSegment(node map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// starting at n=0 and stops at the first index missing a host or port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + name)
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
