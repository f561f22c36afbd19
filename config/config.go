package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sgostarter/libsketch/collections"
)

// Load parses a yaml document into a plain nested map.
func Load(d []byte) (doc map[string]any, err error) {
	err = yaml.Unmarshal(d, &doc)

	return
}

func LoadFile(fileName string) (map[string]any, error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return Load(d)
}

// Merge layers overlay over base; nested maps merge recursively, overlay
// wins elsewhere. Neither input is mutated.
func Merge(base, overlay map[string]any) map[string]any {
	return collections.DeepMerge(base, overlay)
}
