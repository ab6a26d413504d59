// Package config loads the sha256sum settings from the environment, or from a
// KEY=value file, using go-simpler.org/env struct tags.
package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go-simpler.org/env"
)

// C is the configuration for sha256sum.
type C struct {
	AppName    string `env:"SHA256_APP_NAME" default:"sha256sum" usage:"name shown in help output"`
	LogLevel   string `env:"SHA256_LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug or trace"`
	Sample     string `env:"SHA256_SAMPLE" default:"Hello, World!" usage:"text hashed by the demo command"`
	BufferSize int    `env:"SHA256_BUFFER_SIZE" default:"65536" usage:"read chunk size in bytes when hashing files"`
}

// Load reads the configuration from src, or from the process environment
// when src is nil.
func Load(src env.Source) (c *C, err error) {
	c = &C{}
	opts := &env.Options{SliceSep: ","}
	if src != nil {
		opts.Source = src
	}
	if err = env.Load(c, opts); chk.T(err) {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if c.BufferSize <= 0 {
		return nil, errorf.E("SHA256_BUFFER_SIZE must be positive, got %d", c.BufferSize)
	}
	return
}

// Usage prints the environment variables that configure sha256sum.
func Usage(w io.Writer) {
	env.Usage(&C{}, w, nil)
}

// Env is a key/value map standing in for environment variables. It satisfies
// env.Source so a file of settings can be loaded in place of the real
// environment.
type Env map[string]string

// LookupEnv returns the value stored under key.
func (e Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = e[key]
	return
}

// ReadEnvFile parses a file of KEY=value lines. Blank lines and lines
// starting with # are skipped, an "export " prefix is ignored and double
// quoted values are unquoted.
func ReadEnvFile(path string) (e Env, err error) {
	var b []byte
	if b, err = os.ReadFile(path); chk.T(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	e = make(Env)
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, found := strings.Cut(line, "=")
		if !found {
			return nil, errorf.W("%s: malformed line %q", path, line)
		}
		v = strings.TrimSpace(v)
		if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
			if v, err = strconv.Unquote(v); chk.E(err) {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		e[strings.TrimSpace(k)] = v
	}
	return
}

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns the env-tagged fields of c into key/value pairs.
func EnvKV(c C) (m KVSlice) {
	t := reflect.TypeOf(c)
	v := reflect.ValueOf(c)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		m = append(m, KV{k, fmt.Sprint(v.Field(i).Interface())})
	}
	return
}

// PrintEnv renders c as a shell script that sets each variable. The output
// can be edited and fed back through ReadEnvFile.
func PrintEnv(c C, w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	kvs := EnvKV(c)
	sort.Sort(kvs)
	for _, kv := range kvs {
		_, _ = fmt.Fprintf(w, "export %s=%q\n", kv.Key, kv.Value)
	}
}
