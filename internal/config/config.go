package config

import (
	"io/ioutil"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goji/param"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/thatguystone/assetmin"
	"gopkg.in/yaml.v2"
)

const envVarPrefix = "ASSETMIN_"

// C stands for "config".
type C struct {
	// Directory holding the source assets
	Src string `yaml:"src"`

	// Directory minified assets are written to
	Dst string `yaml:"dst"`

	// File names of the assets
	Names assetmin.Names `yaml:"names"`

	// Keep running and rebuild when a source changes
	Watch bool `yaml:"watch"`

	// Log at debug level
	Debug bool `yaml:"debug"`

	// Use production logging. Only set from the environment.
	Prod bool `yaml:"-"`
}

// New creates a C with every default filled in
func New() *C {
	return &C{
		Names: assetmin.DefaultNames,
	}
}

// PrefixedEnvVar gets the name of the environment variable for the given key
func PrefixedEnvVar(key string) string {
	return envVarPrefix + key
}

// Load extra configs on top of this config.
func (c *C) Load(files ...string) error {
	for _, file := range files {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "failed to read config file")
		}

		err = yaml.Unmarshal(b, c)
		if err != nil {
			return errors.Wrapf(err, "failed to unmarshal config file %s", file)
		}
	}

	c.Names = c.Names.WithDefaults()
	return nil
}

// LoadEnv overlays ASSETMIN_* variables on top of this config. Variables
// missing from the process environment are looked up in the given env files,
// or in ".env" if none are given and it exists.
func (c *C) LoadEnv(envFiles ...string) error {
	optional := len(envFiles) == 0
	if optional {
		envFiles = []string{".env"}
	}

	fileVals, err := godotenv.Read(envFiles...)
	if err != nil {
		if !optional || !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to read env file")
		}

		fileVals = map[string]string{}
	}

	get := func(key string) string {
		key = PrefixedEnvVar(key)
		if v, ok := os.LookupEnv(key); ok {
			return v
		}

		return fileVals[key]
	}

	if v := get("SRC"); v != "" {
		c.Src = v
	}

	if v := get("DST"); v != "" {
		c.Dst = v
	}

	if v := get("NAMES"); v != "" {
		err = c.SetNames(v)
		if err != nil {
			return errors.Wrap(err, PrefixedEnvVar("NAMES"))
		}
	}

	c.Watch = boolConfig(get("WATCH"), c.Watch)
	c.Debug = boolConfig(get("DEBUG"), c.Debug)

	prodEnvValues := []string{"prod", "production"}
	c.Prod = slices.Contains(prodEnvValues, strings.ToLower(get("ENV")))

	return nil
}

// SetNames overrides asset names from a query string, eg.
// "markup=page.html&script=main.js". Kinds that aren't mentioned keep their
// names.
func (c *C) SetNames(query string) error {
	vals, err := url.ParseQuery(query)
	if err != nil {
		return errors.Wrapf(err, "invalid names %q", query)
	}

	kinds := url.Values{}
	for k, v := range vals {
		kind, err := assetmin.ParseKind(k)
		if err != nil {
			return err
		}

		kinds[kind.String()] = v
	}

	err = param.Parse(kinds, &c.Names)
	if err != nil {
		return errors.Wrapf(err, "invalid names %q", query)
	}

	return nil
}

// Validate checks that this config can be used for a build
func (c *C) Validate() error {
	if c.Src == "" {
		return errors.New("no source directory given")
	}

	if c.Dst == "" {
		return errors.New("no destination directory given")
	}

	return c.Names.Validate()
}

// Opts creates the build options described by this config
func (c *C) Opts(logf func(string, ...interface{})) assetmin.Opts {
	return assetmin.Opts{
		Src:   c.Src,
		Dst:   c.Dst,
		Names: c.Names,
		Logf:  logf,
	}
}

func boolConfig(value string, defaultValue bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return b
}
