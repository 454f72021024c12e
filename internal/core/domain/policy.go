package domain

import "slices"

// PackagingAllowList is the fixed set of targets eligible for bootable-image
// packaging. GRUB images are only produced for BIOS-bootable profiles.
var PackagingAllowList = []string{"x86"}

// PackagingPolicy decides whether a just-built target gets packaged into a
// bootable image.
type PackagingPolicy struct {
	// Enabled is the global packaging flag (PACKAGE_ISO).
	Enabled bool
}

// Allows reports whether packaging runs for the given mode and target.
// Packaging runs only after a compile, only when globally enabled, and only
// for allow-listed targets.
func (p PackagingPolicy) Allows(mode Mode, target string) bool {
	return mode == ModeCompile && p.Enabled && slices.Contains(PackagingAllowList, target)
}

// ArtifactName is the canonical name a compiled kernel is relocated to.
func ArtifactName(target string) string {
	return "kernel-" + target
}

// ImageName is the primary bootable image name for a target.
func ImageName(product, target string) string {
	return product + "-grub-" + target + ".iso"
}

// ImageAliasName is the second, target-qualified copy of the bootable image.
func ImageAliasName(product, target string) string {
	return product + "-" + target + ".iso"
}
