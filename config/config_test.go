package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/exact"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, uint64(42), c.Seed)
	require.Equal(t, 10*time.Second, c.TimeLimit)
	require.Equal(t, GA{PopulationSize: 264, EliteFraction: 0.14, MutantFraction: 0.25, EliteBias: 0.65}, c.BRKGA)
	require.Equal(t, GA{PopulationSize: 340, EliteFraction: 0.17, MutantFraction: 0.24, EliteBias: 0.78}, c.Hybrid)
	require.Equal(t, 10, c.Intensify.Interval)
	require.Equal(t, 5*time.Second, c.Race.SampleInterval)
	require.Equal(t, 0.9995, c.Anneal.Cooling)
}

func TestParse_OverlaysFile(t *testing.T) {
	c, err := Parse([]byte(`
seed: 7
time_limit: 2s
workers: 4
hybrid:
  population_size: 100
intensify:
  interval: 5
  oracle_time_limit: 250ms
log:
  format: json
`))
	require.NoError(t, err)
	require.Equal(t, uint64(7), c.Seed)
	require.Equal(t, 2*time.Second, c.TimeLimit)
	require.Equal(t, 4, c.Workers)
	require.Equal(t, 100, c.Hybrid.PopulationSize)
	require.Equal(t, 0.17, c.Hybrid.EliteFraction) // untouched keys keep defaults
	require.Equal(t, 5, c.Intensify.Interval)
	require.Equal(t, 250*time.Millisecond, c.Intensify.OracleTimeLimit)
	require.Equal(t, "json", c.Log.Format)

	c, err = Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"syntax", "seed: [", ErrParse},
		{"unknown key", "sede: 3", ErrParse},
		{"fraction sum", "brkga: {elite_fraction: 0.6, mutant_fraction: 0.5}", brkga.ErrFractionSum},
		{"no elite", "brkga: {population_size: 5, elite_fraction: 0.1}", brkga.ErrNoElite},
		{"negative time", "time_limit: -1s", ErrInvalid},
		{"workers", "workers: 0", ErrInvalid},
		{"generations", "generations: -1", ErrInvalid},
		{"log level", "log: {level: loud}", ErrInvalid},
		{"key bands", "intensify: {high_key: 0.5, low_key: 0.45}", ErrInvalid},
		{"high band", "intensify: {high_key: 0.95}", ErrInvalid},
		{"temperatures", "anneal: {initial_temp: 1, min_temp: 2}", ErrInvalid},
		{"check every", "exact: {check_every: 1000}", ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Parse([]byte("brkga: {elite_fraction: 0.6, mutant_fraction: 0.5}"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MISOPT_SEED":            "99",
		"MISOPT_TIME_LIMIT":      "1m",
		"MISOPT_WORKERS":         "3",
		"MISOPT_GENERATIONS":     "250",
		"MISOPT_SAMPLE_INTERVAL": "500ms",
		"MISOPT_LOG_LEVEL":       "debug",
		"MISOPT_LOG_FORMAT":      "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c := Default()
	require.NoError(t, c.applyEnv(lookup))
	require.Equal(t, uint64(99), c.Seed)
	require.Equal(t, time.Minute, c.TimeLimit)
	require.Equal(t, 3, c.Workers)
	require.Equal(t, 250, c.Generations)
	require.Equal(t, 500*time.Millisecond, c.Race.SampleInterval)
	require.Equal(t, Log{Level: "debug", Format: "json"}, c.Log)

	env["MISOPT_WORKERS"] = "many"
	require.ErrorIs(t, c.applyEnv(lookup), ErrEnv)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "misopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nworkers: 2\n"), 0o600))
	t.Setenv("MISOPT_SEED", "6")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(6), c.Seed) // env wins over file
	require.Equal(t, 2, c.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrRead)

	t.Setenv("MISOPT_TIME_LIMIT", "0s")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestConversions(t *testing.T) {
	c := Default()
	c.Seed = 11
	c.TimeLimit = 3 * time.Second
	c.Workers = 2

	plain := c.BRKGAOptions(false)
	require.Nil(t, plain.Oracle)
	require.Equal(t, 264, plain.PopulationSize)
	require.Equal(t, uint64(11), plain.Seed)
	require.Equal(t, brkga.StopOnTime, plain.Stop)
	require.Equal(t, 3*time.Second, plain.TimeLimit)
	require.Equal(t, 2, plain.Workers)
	require.Equal(t, brkga.DefaultIntensifyOptions(), plain.Intensify)

	hy := c.BRKGAOptions(true)
	require.IsType(t, &exact.Solver{}, hy.Oracle)
	require.Equal(t, 340, hy.PopulationSize)
	require.Equal(t, 0.78, hy.EliteBias)

	require.Equal(t, exact.DefaultOptions(), c.ExactOptions())

	sa := c.AnnealOptions()
	require.Equal(t, int64(11), sa.Seed)
	require.Equal(t, 3*time.Second, sa.TimeLimit)
	require.Equal(t, 100.0, sa.InitialTemp)

	c.Generations = 40
	gens := c.BRKGAOptions(true)
	require.Equal(t, brkga.StopOnGenerations, gens.Stop)
	require.Equal(t, 40, gens.Generations)
	_, err := brkga.New(builder.MustBuild(builder.Path(5)), gens)
	require.NoError(t, err)

	ro := c.RaceOptions()
	require.Equal(t, 3*time.Second, ro.TimeLimit)
	require.Equal(t, 5*time.Second, ro.SampleInterval)
}
