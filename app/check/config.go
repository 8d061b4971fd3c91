package check

import (
	"bytes"
	"fmt"
	"os"

	"github.com/volgavod/slist/internal/mlog"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed        uint64  `yaml:"seed"`
	Ops         int     `yaml:"ops"`
	MaxValue    int64   `yaml:"max_value"`
	MaxLen      int     `yaml:"max_len"`
	Initial     []int64 `yaml:"initial"`
	ReportEvery int     `yaml:"report_every"`
}

func (cfg *Config) setDefault() {
	setDefaultGZ(&cfg.Ops, 100_000)
	setDefaultGZ(&cfg.MaxValue, 64)
	setDefaultGZ(&cfg.MaxLen, 2048)
	setDefaultGZ(&cfg.ReportEvery, 10_000)
}

func setDefaultGZ[T constraints.Integer](i *T, d T) {
	if *i <= 0 {
		*i = d
	}
}

func genConfigTemplate(o string) {
	logger := mlog.L()
	cfg := &Config{
		Seed:    1,
		Initial: []int64{1, 2, 3},
	}
	cfg.setDefault()

	b := new(bytes.Buffer)
	encoder := yaml.NewEncoder(b)
	encoder.SetIndent(2)

	err := encoder.Encode(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode config")
	}
	encoder.Close()

	if len(o) == 0 || o == "stdout" {
		fmt.Printf("%s\n", b.Bytes())
	} else {
		err := os.WriteFile(o, b.Bytes(), 0644)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to write config file")
		}
	}
}
