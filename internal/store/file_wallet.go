package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

const walletFileExt = ".wallet.json"

// fileWalletRepository keeps one JSON file per wallet under dir. File names
// are the base64url form of the id, so any id maps to a valid name.
type fileWalletRepository struct {
	dir    string
	mu     sync.RWMutex
	logger *logger.Logger
	now    func() time.Time
}

// NewFileWalletRepository creates dir if needed and returns a
// [WalletRepository] storing wallets in it.
func NewFileWalletRepository(dir string, log *logger.Logger) (WalletRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create wallet dir: %w", err)
	}

	return &fileWalletRepository{
		dir:    dir,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *fileWalletRepository) Save(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	if wallet.ID == "" {
		return models.EncryptedWallet{}, ErrEmptyWalletID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(wallet.ID); err == nil {
		return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletAlreadyExists, wallet.ID)
	} else if !errors.Is(err, ErrWalletNotFound) {
		return models.EncryptedWallet{}, err
	}

	now := s.now()
	wallet.Version = 1
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	if err := s.persist(wallet); err != nil {
		return models.EncryptedWallet{}, err
	}
	return wallet, nil
}

func (s *fileWalletRepository) Get(ctx context.Context, id string) (models.EncryptedWallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load(id)
}

func (s *fileWalletRepository) Update(ctx context.Context, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(wallet.ID)
	if err != nil {
		return models.EncryptedWallet{}, err
	}
	if current.Version != wallet.Version {
		return models.EncryptedWallet{}, fmt.Errorf("%w: stored version is %d", ErrVersionConflict, current.Version)
	}

	current.State = wallet.State
	current.Version++
	current.UpdatedAt = s.now()

	if err = s.persist(current); err != nil {
		return models.EncryptedWallet{}, err
	}
	return current, nil
}

// Rename writes the new file before removing the old one. If the removal
// fails the new file is removed again.
func (s *fileWalletRepository) Rename(ctx context.Context, oldID string, wallet models.EncryptedWallet) (models.EncryptedWallet, error) {
	if wallet.ID == "" {
		return models.EncryptedWallet{}, ErrEmptyWalletID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(oldID)
	if err != nil {
		return models.EncryptedWallet{}, err
	}
	if current.Version != wallet.Version {
		return models.EncryptedWallet{}, fmt.Errorf("%w: stored version is %d", ErrVersionConflict, current.Version)
	}
	if _, err = s.load(wallet.ID); err == nil {
		return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletAlreadyExists, wallet.ID)
	} else if !errors.Is(err, ErrWalletNotFound) {
		return models.EncryptedWallet{}, err
	}

	renamed := models.EncryptedWallet{
		ID:        wallet.ID,
		State:     wallet.State,
		Version:   current.Version + 1,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	if err = s.persist(renamed); err != nil {
		return models.EncryptedWallet{}, err
	}

	if err = os.Remove(s.path(oldID)); err != nil {
		_ = os.Remove(s.path(renamed.ID))
		return models.EncryptedWallet{}, fmt.Errorf("remove old wallet file: %w", err)
	}

	return renamed, nil
}

func (s *fileWalletRepository) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("remove wallet file: %w", err)
	}
	return nil
}

func (s *fileWalletRepository) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read wallet dir: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), walletFileExt)
		if !ok || e.IsDir() {
			continue
		}
		id, err := base64.RawURLEncoding.DecodeString(name)
		if err != nil {
			s.logger.Warn().Str("file", e.Name()).Msg("skipping foreign file in wallet dir")
			continue
		}
		ids = append(ids, string(id))
	}

	slices.Sort(ids)
	return ids, nil
}

func (s *fileWalletRepository) path(id string) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(id))+walletFileExt)
}

func (s *fileWalletRepository) load(id string) (models.EncryptedWallet, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.EncryptedWallet{}, fmt.Errorf("%w: %q", ErrWalletNotFound, id)
		}
		return models.EncryptedWallet{}, fmt.Errorf("read wallet file: %w", err)
	}

	var w models.EncryptedWallet
	if err = json.Unmarshal(data, &w); err != nil {
		return models.EncryptedWallet{}, fmt.Errorf("decode wallet file: %w", err)
	}
	return w, nil
}

// persist writes through a temporary file and renames it into place so a
// crash never leaves a truncated wallet behind.
func (s *fileWalletRepository) persist(w models.EncryptedWallet) error {
	payload, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("encode wallet: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".wallet-*")
	if err != nil {
		return fmt.Errorf("create temp wallet file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write wallet file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync wallet file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close wallet file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path(w.ID)); err != nil {
		return fmt.Errorf("write wallet file: %w", err)
	}
	return nil
}
