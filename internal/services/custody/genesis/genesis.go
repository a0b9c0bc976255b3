// Package genesis loads the initial account, balances and scripted contracts
// of a custody environment from TOML.
package genesis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
)

// Genesis is the decoded and validated genesis file.
type Genesis struct {
	Account   account.InitializePayload
	Deployer  address.Address
	Balances  map[address.Address]amount.Amount
	Contracts []Contract
}

// Contract is a scripted contract deployed at startup.
type Contract struct {
	Address address.Address
	Name    string
	Script  string
}

type fileGenesis struct {
	Account struct {
		Address   address.Address   `toml:"address"`
		Owner     address.Address   `toml:"owner"`
		Threshold int               `toml:"threshold"`
		Guardians []address.Address `toml:"guardians"`
	} `toml:"account"`
	Balances []struct {
		Address address.Address `toml:"address"`
		Amount  string          `toml:"amount"`
	} `toml:"balances"`
	Contracts []struct {
		Address    address.Address `toml:"address"`
		Name       string          `toml:"name"`
		Script     string          `toml:"script"`
		ScriptPath string          `toml:"script_path"`
	} `toml:"contracts"`
}

// Load reads and validates the genesis file at path. Relative script paths
// resolve against the file's directory.
func Load(path string) (Genesis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, fmt.Errorf("read genesis: %w", err)
	}
	return Parse(string(raw), filepath.Dir(path))
}

// Parse decodes genesis TOML. baseDir resolves relative script paths.
func Parse(data, baseDir string) (Genesis, error) {
	var raw fileGenesis
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Genesis{}, fmt.Errorf("decode genesis: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Genesis{}, fmt.Errorf("unknown genesis keys: %s", strings.Join(keys, ", "))
	}

	g := Genesis{
		Account: account.InitializePayload{
			Address:   raw.Account.Address,
			Owner:     raw.Account.Owner,
			Threshold: raw.Account.Threshold,
			Guardians: raw.Account.Guardians,
		},
		Deployer: raw.Account.Owner,
		Balances: make(map[address.Address]amount.Amount, len(raw.Balances)),
	}
	if !meta.IsDefined("account", "threshold") {
		g.Account.Threshold = account.DefaultThreshold
	}
	if g.Account.Address.IsZero() {
		return Genesis{}, errors.New("account.address is required")
	}
	if g.Account.Owner.IsZero() {
		return Genesis{}, errors.New("account.owner is required")
	}
	if g.Account.Threshold < 1 {
		return Genesis{}, fmt.Errorf("account.threshold must be at least 1, got %d", g.Account.Threshold)
	}

	for i, b := range raw.Balances {
		if b.Address.IsZero() {
			return Genesis{}, fmt.Errorf("balances[%d].address is required", i)
		}
		value, err := amount.Parse(b.Amount)
		if err != nil {
			return Genesis{}, fmt.Errorf("balances[%d].amount: %w", i, err)
		}
		total, ok := g.Balances[b.Address].Add(value)
		if !ok {
			return Genesis{}, fmt.Errorf("balances[%d].amount: %w", i, amount.ErrOverflow)
		}
		g.Balances[b.Address] = total
	}

	seen := make(map[address.Address]bool, len(raw.Contracts))
	for i, c := range raw.Contracts {
		if c.Address.IsZero() {
			return Genesis{}, fmt.Errorf("contracts[%d].address is required", i)
		}
		if c.Address == g.Account.Address {
			return Genesis{}, fmt.Errorf("contracts[%d].address collides with the account", i)
		}
		if seen[c.Address] {
			return Genesis{}, fmt.Errorf("contracts[%d].address %s is deployed twice", i, c.Address)
		}
		seen[c.Address] = true

		script := c.Script
		if c.ScriptPath != "" {
			if script != "" {
				return Genesis{}, fmt.Errorf("contracts[%d] sets both script and script_path", i)
			}
			p := c.ScriptPath
			if !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			body, err := os.ReadFile(p)
			if err != nil {
				return Genesis{}, fmt.Errorf("contracts[%d].script_path: %w", i, err)
			}
			script = string(body)
		}
		if strings.TrimSpace(script) == "" {
			return Genesis{}, fmt.Errorf("contracts[%d] has no script", i)
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = c.Address.String()
		}
		g.Contracts = append(g.Contracts, Contract{Address: c.Address, Name: name, Script: script})
	}
	return g, nil
}

// Deploy compiles every scripted contract and installs it in env.
func (g Genesis) Deploy(env *chain.Env) error {
	for _, c := range g.Contracts {
		contract, err := chain.NewLuaContract(c.Name, c.Script)
		if err != nil {
			return fmt.Errorf("contract %s: %w", c.Name, err)
		}
		env.Deploy(c.Address, contract)
	}
	return nil
}

// SeedBalances writes the genesis balances into env.
func (g Genesis) SeedBalances(env *chain.Env) {
	for addr, value := range g.Balances {
		env.SetBalance(addr, value)
	}
}
