package services

import (
	"os"
	"testing"

	"github.com/studivo/studivo-backend/internal/prompts"
)

func TestMain(m *testing.M) {
	prompts.RegisterAll()
	os.Exit(m.Run())
}
