package experiment

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/logger"
)

// The graphs an experiment can walk on.
const (
	Complete = "complete"
	Cycle    = "cycle"
	Random   = "random"
	Redis    = "redis"
)

// Config holds the parameters of a cover time experiment.
type Config struct {
	// the kind of graph: complete, cycle, random or redis
	GraphType string

	// the number of vertices; ignored for redis graphs
	Order uint32

	// the edge probability of random graphs
	Probability float64

	// how many times each vertex must be visited
	Cover int

	Trials   int
	Parallel int

	// trial i uses a random generator seeded with Seed + i
	Seed int64

	// the maximum number of steps of a trial. 0 means unlimited
	MaxSteps int

	RedisAddr string

	Log       *logger.Aggregate
	LogWriter io.Writer
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		GraphType:   Complete,
		Order:       10,
		Probability: 0.5,
		Cover:       1,
		Trials:      100,
		Parallel:    runtime.NumCPU(),
		Seed:        0,
		MaxSteps:    0,
		RedisAddr:   "localhost:6379",
		Log:         logger.New(os.Stdout),
		LogWriter:   os.Stdout,
	}
}

// Validate() returns ErrInvalidConfig if one of the parameters is out of range.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", models.ErrInvalidConfig)
	}

	switch c.GraphType {
	case Complete, Cycle, Random:
		if c.Order == 0 {
			return fmt.Errorf("%w: order must be positive", models.ErrInvalidConfig)
		}

	case Redis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: redis address is empty", models.ErrInvalidConfig)
		}

	default:
		return fmt.Errorf("%w: unknown graph type \"%s\"", models.ErrInvalidConfig, c.GraphType)
	}

	if c.GraphType == Random && (c.Probability < 0 || c.Probability > 1) {
		return fmt.Errorf("%w: probability %v is not in [0, 1]", models.ErrInvalidConfig, c.Probability)
	}

	if c.Cover < 1 {
		return fmt.Errorf("%w: cover must be positive", models.ErrInvalidConfig)
	}

	if c.Trials < 1 || c.Parallel < 1 {
		return fmt.Errorf("%w: trials and parallel must be positive", models.ErrInvalidConfig)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps must be non-negative", models.ErrInvalidConfig)
	}

	return nil
}

func (c *Config) Print() {
	fmt.Println("Experiment:")
	fmt.Printf("  GraphType: %s\n", c.GraphType)
	fmt.Printf("  Order: %d\n", c.Order)
	fmt.Printf("  Probability: %v\n", c.Probability)
	fmt.Printf("  Cover: %d\n", c.Cover)
	fmt.Printf("  Trials: %d\n", c.Trials)
	fmt.Printf("  Parallel: %d\n", c.Parallel)
	fmt.Printf("  Seed: %d\n", c.Seed)
	fmt.Printf("  MaxSteps: %d\n", c.MaxSteps)
	fmt.Printf("  RedisAddr: %s\n", c.RedisAddr)
	fmt.Printf("  LogWriter: %T\n", c.LogWriter)
}

/*
LoadConfig() loads the .env files (".env" if none is specified) into the
environment, then parses the HYPERWALK_* variables into a config. Missing files
are ignored, and variables already in the environment take precedence over the files.
*/
func LoadConfig(files ...string) (_ *Config, err error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading \"%s\": %w", file, err)
		}
	}

	cfg := NewConfig()
	defer func() {
		// the log file is only handed over with a valid config
		if err != nil {
			cfg.CloseLogs()
		}
	}()

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "HYPERWALK_LOGS":
			// the logs go to os.Stdout unless a .log file is specified
			if strings.HasSuffix(val, ".log") {
				log, file, err := logger.Init(val)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
				cfg.Log, cfg.LogWriter = log, file
			}

		case "HYPERWALK_GRAPH":
			cfg.GraphType = val

		case "HYPERWALK_ORDER":
			order, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}
			cfg.Order = uint32(order)

		case "HYPERWALK_PROBABILITY":
			cfg.Probability, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_COVER":
			cfg.Cover, err = strconv.Atoi(val)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_TRIALS":
			cfg.Trials, err = strconv.Atoi(val)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_PARALLEL":
			cfg.Parallel, err = strconv.Atoi(val)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_SEED":
			cfg.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_MAX_STEPS":
			cfg.MaxSteps, err = strconv.Atoi(val)
			if err != nil {
				return nil, parsingError(keyVal, err)
			}

		case "HYPERWALK_REDIS_ADDR":
			cfg.RedisAddr = val
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parsingError(keyVal []string, err error) error {
	return fmt.Errorf("%w: error parsing %v: %v", models.ErrInvalidConfig, keyVal, err)
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout {
		file.Close()
	}
}
