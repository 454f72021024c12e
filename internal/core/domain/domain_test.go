package domain_test

import (
	"testing"

	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name       string
		check      bool
		format     bool
		wantMode   domain.Mode
		wantWarned bool
	}{
		{name: "default is compile", wantMode: domain.ModeCompile},
		{name: "check flag", check: true, wantMode: domain.ModeCheck},
		{name: "format flag", format: true, wantMode: domain.ModeFormat},
		{name: "format wins over check", check: true, format: true, wantMode: domain.ModeFormat, wantWarned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, warned := domain.ResolveMode(tt.check, tt.format)
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantWarned, warned)
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg, err := domain.NewConfig(map[string]string{
			domain.KeyVersion: "1.0.0",
			domain.KeyTargets: "x86 mips64 arm",
			"x86":             "targets/x86-unknown-none.json",
			"mips64":          "mips64-unknown-none",
			"arm":             "arm-unknown-none",
		})
		require.NoError(t, err)

		assert.Equal(t, "1.0.0", cfg.Version)
		assert.Equal(t, []string{"x86", "mips64", "arm"}, cfg.Targets)
		assert.Equal(t, "targets/x86-unknown-none.json", cfg.Platforms["x86"])
		assert.Equal(t, domain.DefaultProduct, cfg.Product)
		assert.Equal(t, domain.DefaultTemplateDir, cfg.TemplateDir)
		assert.False(t, cfg.PackageISO)
		assert.False(t, cfg.ContinueOnMismatch)
	})

	t.Run("aggregates missing keys", func(t *testing.T) {
		_, err := domain.NewConfig(map[string]string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
		assert.ErrorIs(t, err, domain.ErrNoTargets)
	})

	t.Run("boolean flags accept shell conventions", func(t *testing.T) {
		for _, v := range []string{"1", "true", "yes", "on", "TRUE"} {
			cfg, err := domain.NewConfig(map[string]string{
				domain.KeyVersion:            "1.0.0",
				domain.KeyTargets:            "x86",
				"x86":                        "x86-unknown-none",
				domain.KeyPackageISO:         v,
				domain.KeyContinueOnMismatch: v,
			})
			require.NoError(t, err)
			assert.True(t, cfg.PackageISO, v)
			assert.True(t, cfg.ContinueOnMismatch, v)
		}
	})

	t.Run("product and template dir overridable", func(t *testing.T) {
		cfg, err := domain.NewConfig(map[string]string{
			domain.KeyVersion:     "1.0.0",
			domain.KeyTargets:     "x86",
			"x86":                 "x86-unknown-none",
			domain.KeyProduct:     "hermes",
			domain.KeyTemplateDir: "boot/template",
		})
		require.NoError(t, err)
		assert.Equal(t, "hermes", cfg.Product)
		assert.Equal(t, "boot/template", cfg.TemplateDir)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Run("resolves targets in declaration order", func(t *testing.T) {
		cfg, err := domain.NewConfig(map[string]string{
			domain.KeyVersion: "1.0.0",
			domain.KeyTargets: "x86 mips64",
			"x86":             "targets/x86-unknown-none.json",
			"mips64":          "mips64-unknown-none",
		})
		require.NoError(t, err)

		reg, err := domain.NewRegistry(cfg)
		require.NoError(t, err)
		require.Equal(t, 2, reg.Len())

		all := reg.All()
		assert.Equal(t, "x86", all[0].Name)
		// Directory components of the raw value are discarded.
		assert.Equal(t, "x86-unknown-none.json", all[0].Platform)
		assert.Equal(t, "mips64", all[1].Name)
		assert.Equal(t, "mips64-unknown-none", all[1].Platform)
	})

	t.Run("fails eagerly on unresolved names", func(t *testing.T) {
		cfg, err := domain.NewConfig(map[string]string{
			domain.KeyVersion: "1.0.0",
			domain.KeyTargets: "x86 ghost phantom",
			"x86":             "x86-unknown-none",
		})
		require.NoError(t, err)

		_, err = domain.NewRegistry(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownTarget)
		assert.Contains(t, err.Error(), "ghost")
		assert.Contains(t, err.Error(), "phantom")
	})

	t.Run("resolve unknown name", func(t *testing.T) {
		cfg, err := domain.NewConfig(map[string]string{
			domain.KeyVersion: "1.0.0",
			domain.KeyTargets: "x86",
			"x86":             "x86-unknown-none",
		})
		require.NoError(t, err)

		reg, err := domain.NewRegistry(cfg)
		require.NoError(t, err)

		_, err = reg.Resolve("riscv64")
		assert.ErrorIs(t, err, domain.ErrUnknownTarget)
	})
}

func TestPackagingPolicy(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		mode    domain.Mode
		target  string
		want    bool
	}{
		{name: "compile enabled allow-listed", enabled: true, mode: domain.ModeCompile, target: "x86", want: true},
		{name: "disabled", enabled: false, mode: domain.ModeCompile, target: "x86", want: false},
		{name: "check mode", enabled: true, mode: domain.ModeCheck, target: "x86", want: false},
		{name: "format mode", enabled: true, mode: domain.ModeFormat, target: "x86", want: false},
		{name: "not allow-listed", enabled: true, mode: domain.ModeCompile, target: "mips64", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.PackagingPolicy{Enabled: tt.enabled}
			assert.Equal(t, tt.want, p.Allows(tt.mode, tt.target))
		})
	}
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "kernel-x86", domain.ArtifactName("x86"))
	assert.Equal(t, "aphrodite-grub-x86.iso", domain.ImageName("aphrodite", "x86"))
	assert.Equal(t, "aphrodite-x86.iso", domain.ImageAliasName("aphrodite", "x86"))
}
