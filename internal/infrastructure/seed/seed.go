// Package seed loads reference data (customers, users, reasons) from YAML.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

// File is the seed document layout.
type File struct {
	Customers       []Customer `yaml:"customers"`
	Users           []User     `yaml:"users"`
	DefaultReasons  []Reason   `yaml:"default_reasons"`
	RecoveryReasons []Reason   `yaml:"recovery_reasons"`
}

type Customer struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	ExternalRating string `yaml:"external_rating"`
	Industry       string `yaml:"industry"`
	Region         string `yaml:"region"`
}

type User struct {
	ID         string `yaml:"id"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	RealName   string `yaml:"real_name"`
	Department string `yaml:"department"`
	Role       string `yaml:"role"`
	Phone      string `yaml:"phone"`
	Email      string `yaml:"email"`
}

// Reason entries without an ID are minted from the reason sequence.
type Reason struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
	Enabled *bool  `yaml:"enabled"`
}

// Result counts the records written by Apply.
type Result struct {
	Customers int
	Users     int
	Reasons   int
}

// Load decodes a seed document. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return &f, nil
}

// LoadFile reads a seed document from path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Seeder writes a seed document in one transaction.
type Seeder struct {
	customers customer.Repository
	users     user.Repository
	reasons   reason.Repository
	sequencer sequence.Sequencer
	hasher    user.PasswordHasher
	runner    db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewSeeder(
	customers customer.Repository,
	users user.Repository,
	reasons reason.Repository,
	sequencer sequence.Sequencer,
	hasher user.PasswordHasher,
	runner db.Runner,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		customers: customers,
		users:     users,
		reasons:   reasons,
		sequencer: sequencer,
		hasher:    hasher,
		runner:    runner,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Apply upserts customers and users and creates reasons that do not exist
// yet. Existing reasons are left untouched.
func (s *Seeder) Apply(ctx context.Context, f *File) (Result, error) {
	var res Result
	now := s.now()

	err := s.runner.Run(ctx, func(ctx context.Context) error {
		for _, c := range f.Customers {
			if c.ID == "" || c.Name == "" {
				return fmt.Errorf("customer entries need id and name")
			}
			cust := customer.NewCustomer(c.ID, c.Name, c.ExternalRating, c.Industry, c.Region, now)
			if err := s.customers.Upsert(ctx, cust); err != nil {
				return err
			}
			res.Customers++
		}

		for _, u := range f.Users {
			profile := user.Profile{
				RealName:   u.RealName,
				Department: u.Department,
				Role:       u.Role,
				Phone:      u.Phone,
				Email:      u.Email,
			}
			usr, err := user.NewUser(u.ID, u.Username, u.Password, profile, s.hasher, now)
			if err != nil {
				return fmt.Errorf("user %q: %w", u.Username, err)
			}
			if err := s.users.Upsert(ctx, usr); err != nil {
				return err
			}
			res.Users++
		}

		for kind, entries := range map[reason.Kind][]Reason{
			reason.KindDefault:  f.DefaultReasons,
			reason.KindRecovery: f.RecoveryReasons,
		} {
			n, err := s.applyReasons(ctx, kind, entries, now)
			if err != nil {
				return err
			}
			res.Reasons += n
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seed failed", "error", err)
		return Result{}, err
	}

	s.logger.Infow("seed applied",
		"customers", res.Customers,
		"users", res.Users,
		"reasons", res.Reasons,
	)
	return res, nil
}

func (s *Seeder) applyReasons(ctx context.Context, kind reason.Kind, entries []Reason, now time.Time) (int, error) {
	created := 0
	for _, e := range entries {
		id := e.ID
		if id != "" {
			existing, err := s.reasons.GetByID(ctx, kind, id)
			if err != nil {
				return created, err
			}
			if existing != nil {
				continue
			}
		} else {
			next, err := s.sequencer.Next(ctx, kind.Sequence())
			if err != nil {
				return created, err
			}
			id = next
		}

		r, err := reason.NewReason(kind, id, reason.NormalizeContent(e.Content), now)
		if err != nil {
			return created, fmt.Errorf("%s reason %q: %w", kind, id, err)
		}
		if e.Enabled != nil && !*e.Enabled {
			disabled := false
			r.Apply(reason.Patch{Enabled: &disabled}, now)
		}
		if err := s.reasons.Create(ctx, r); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
