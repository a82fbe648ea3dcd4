package component

// HitResult classifies the outcome of a damage attempt
type HitResult uint8

const (
	// HitIgnored means the hit had no effect (dead, immune or invulnerable)
	HitIgnored HitResult = iota
	// HitAbsorbed means a shield charge took the hit
	HitAbsorbed
	// HitDamaged means hit points dropped but the target survived
	HitDamaged
	// HitKilled means the hit dropped hit points to zero
	HitKilled
)

// Landed reports whether the hit reached the target at all
func (r HitResult) Landed() bool {
	return r != HitIgnored
}

// CombatComponent holds hit points and damage gates
type CombatComponent struct {
	// HitPoints is the remaining hit points; <= 0 means dead
	HitPoints    int
	MaxHitPoints int

	// Damage is dealt to whatever this agent strikes
	Damage int

	// ShieldCharges each absorb one hit instead of hit points
	ShieldCharges int

	// ImmunityRemaining ticks during which hits are ignored
	ImmunityRemaining int
	// ImmunityTicks is granted after every landed hit; 0 disables the window
	ImmunityTicks int

	// Invulnerable ignores all hits while set (boss shield phases)
	Invulnerable bool
}

// Apply runs the damage gates in order: immunity, invulnerability, shield, hit points
func (c *CombatComponent) Apply(amount int) HitResult {
	if c.HitPoints <= 0 || c.ImmunityRemaining > 0 || c.Invulnerable {
		return HitIgnored
	}
	c.ImmunityRemaining = c.ImmunityTicks
	if c.ShieldCharges > 0 {
		c.ShieldCharges--
		return HitAbsorbed
	}
	c.HitPoints -= amount
	if c.HitPoints <= 0 {
		c.HitPoints = 0
		return HitKilled
	}
	return HitDamaged
}

// Tick counts down the immunity window
func (c *CombatComponent) Tick() {
	if c.ImmunityRemaining > 0 {
		c.ImmunityRemaining--
	}
}

// Heal restores hit points up to the maximum
func (c *CombatComponent) Heal(amount int) {
	c.HitPoints = min(c.HitPoints+amount, c.MaxHitPoints)
}

// Fraction returns remaining health in [0, 1]
func (c *CombatComponent) Fraction() float64 {
	if c.MaxHitPoints <= 0 {
		return 0
	}
	return float64(c.HitPoints) / float64(c.MaxHitPoints)
}
