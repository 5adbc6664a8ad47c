package types

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/pelletier/go-toml/v2"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Config holds the deployment constants of the faucet. It is fixed for the
// lifetime of a chain; there is no message that changes it.
type Config struct {
	// Denom is the coin denomination the faucet tops accounts up in.
	Denom string
	// MaxBalance is the ceiling a mint raises an account balance to.
	MaxBalance math.Int
	// MinInterval is the number of blocks that must pass between two
	// successful mints for the same account.
	MinInterval int64
}

// NewConfig returns a Config instance with the given values.
func NewConfig(denom string, maxBalance math.Int, minInterval int64) Config {
	return Config{
		Denom:       denom,
		MaxBalance:  maxBalance,
		MinInterval: minInterval,
	}
}

// DefaultConfig returns the faucet settings used for local test networks.
func DefaultConfig() Config {
	return Config{
		Denom:       sdk.DefaultBondDenom,
		MaxBalance:  math.NewInt(2_000),
		MinInterval: DefaultMinInterval(),
	}
}

// ~5 seconds block time, one day of blocks
func DefaultMinInterval() int64 {
	return int64(17280)
}

// Validate does the sanity check on the config.
func (c Config) Validate() error {
	if err := validateDenom(c.Denom); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := validateMaxBalance(c.MaxBalance); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.MinInterval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "min interval cannot be negative: %d", c.MinInterval)
	}
	return nil
}

func validateDenom(denom string) error {
	if strings.TrimSpace(denom) == "" {
		return fmt.Errorf("faucet denom cannot be blank")
	}
	return sdk.ValidateDenom(denom)
}

func validateMaxBalance(v math.Int) error {
	if v.IsNil() {
		return fmt.Errorf("max balance cannot be nil")
	}
	if !v.IsPositive() {
		return fmt.Errorf("max balance must be positive: %s", v)
	}
	return nil
}

// configFile mirrors the [faucet] table of the app configuration. Balances
// are strings since they routinely exceed 64 bits.
type configFile struct {
	Faucet struct {
		Denom       string `toml:"denom"`
		MaxBalance  string `toml:"max_balance"`
		MinInterval int64  `toml:"min_interval"`
	} `toml:"faucet"`
}

func MustLoadConfigTOML(path string) Config {
	cfg, err := LoadConfigTOML(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigTOML reads the faucet section of a TOML file and validates it.
func LoadConfigTOML(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "while opening faucet toml")
	}
	defer file.Close()

	var raw configFile
	err = toml.NewDecoder(file).Decode(&raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "while decoding faucet toml")
	}

	maxBalance, ok := math.NewIntFromString(raw.Faucet.MaxBalance)
	if !ok {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "max balance is not an integer: %q", raw.Faucet.MaxBalance)
	}

	cfg := NewConfig(raw.Faucet.Denom, maxBalance, raw.Faucet.MinInterval)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
