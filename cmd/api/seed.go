package main

import (
	"context"
	"fmt"
	"time"

	"pet-adoptions/internal/adapters/storage"
	"pet-adoptions/internal/domain/mocks"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/spf13/cobra"
)

var (
	seedUsers int
	seedPets  int
	seedSeed  uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inserta usuarios y mascotas de prueba en el storage configurado",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedUsers, "users", 0, "cantidad de usuarios a generar")
	seedCmd.Flags().IntVar(&seedPets, "pets", 0, "cantidad de mascotas a generar")
	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0, "semilla del generador (0 = aleatoria)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedUsers < 0 || seedPets < 0 {
		return mocks.ErrInvalidCount
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if seedUsers > cfg.Mocks.MaxGenerate || seedPets > cfg.Mocks.MaxGenerate {
		return fmt.Errorf("%w: max %d per kind", mocks.ErrInvalidCount, cfg.Mocks.MaxGenerate)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	backend, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close(context.Background()) }()

	// El seed solo crea; no hace falta resolver referencias.
	svc := mocks.NewService(
		mocks.NewGenerator(seedSeed),
		users.NewService(backend.Users, nil),
		pets.NewService(backend.Pets, nil),
	)

	res, err := svc.Generate(ctx, seedUsers, seedPets)
	if err != nil {
		log.Error("seed failed", map[string]any{"error": err.Error()})
		return err
	}

	log.Info("seed done", map[string]any{
		"storage": backend.Name,
		"users":   res.UsersCreated,
		"pets":    res.PetsCreated,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "data generated successfully: %d users and %d pets\n", res.UsersCreated, res.PetsCreated)
	return nil
}
