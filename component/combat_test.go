package component

import (
	"testing"

	"github.com/lixenwraith/horde/parameter"
)

func TestApplyGates(t *testing.T) {
	tests := []struct {
		name   string
		c      CombatComponent
		amount int
		want   HitResult
		hp     int
	}{
		{"damage", CombatComponent{HitPoints: 3, MaxHitPoints: 3}, 1, HitDamaged, 2},
		{"kill", CombatComponent{HitPoints: 1, MaxHitPoints: 1}, 1, HitKilled, 0},
		{"overkill clamps", CombatComponent{HitPoints: 1, MaxHitPoints: 1}, 5, HitKilled, 0},
		{"immune", CombatComponent{HitPoints: 3, ImmunityRemaining: 2}, 1, HitIgnored, 3},
		{"invulnerable", CombatComponent{HitPoints: 3, Invulnerable: true}, 1, HitIgnored, 3},
		{"shield", CombatComponent{HitPoints: 3, ShieldCharges: 1}, 1, HitAbsorbed, 3},
		{"dead", CombatComponent{HitPoints: 0}, 1, HitIgnored, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			if got := c.Apply(tt.amount); got != tt.want {
				t.Errorf("Apply = %d, want %d", got, tt.want)
			}
			if c.HitPoints != tt.hp {
				t.Errorf("HitPoints = %d, want %d", c.HitPoints, tt.hp)
			}
		})
	}
}

func TestImmunityGrantedOnShieldHit(t *testing.T) {
	c := CombatComponent{HitPoints: 100, MaxHitPoints: 100, ShieldCharges: 1, ImmunityTicks: 60}
	if c.Apply(10) != HitAbsorbed {
		t.Fatal("Expected shield absorb")
	}
	if c.ImmunityRemaining != 60 {
		t.Errorf("Shield hits must grant immunity, got %d", c.ImmunityRemaining)
	}
	if c.Apply(10) != HitIgnored {
		t.Error("Hit inside immunity window must be ignored")
	}
	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if c.Apply(10) != HitDamaged || c.HitPoints != 90 {
		t.Errorf("Expected damage after window, hp=%d", c.HitPoints)
	}
}

func TestDeadAgentNeverDamagedTwice(t *testing.T) {
	a := &Agent{Alive: true, Combat: CombatComponent{HitPoints: 1, MaxHitPoints: 1}}
	if a.TakeDamage(1) != HitKilled || a.IsAlive() {
		t.Fatal("Expected kill")
	}
	if a.TakeDamage(1) != HitIgnored {
		t.Error("Dead agent must ignore further hits")
	}
}

func TestHealCaps(t *testing.T) {
	c := CombatComponent{HitPoints: 90, MaxHitPoints: 100}
	c.Heal(30)
	if c.HitPoints != 100 {
		t.Errorf("Expected cap at 100, got %d", c.HitPoints)
	}
}

func TestSplitterOffspring(t *testing.T) {
	for gen, want := range []int{2, 2, 0, 0} {
		e := EnemyComponent{Archetype: parameter.EnemySplitter, Generation: gen}
		if got := e.Offspring(); got != want {
			t.Errorf("Generation %d: offspring %d, want %d", gen, got, want)
		}
	}
	bat := EnemyComponent{Archetype: parameter.EnemyBat}
	if bat.Offspring() != 0 {
		t.Error("Non-splitters never split")
	}
}

func TestObstacleExpire(t *testing.T) {
	o := Obstacle{TTL: 2, Alive: true}
	if o.Expire() {
		t.Fatal("Expired too early")
	}
	if !o.Expire() || o.Alive {
		t.Error("Expected expiry on the last tick")
	}
	perm := Obstacle{Alive: true}
	if perm.Expire() || !perm.Alive {
		t.Error("Permanent obstacle must not expire")
	}
}
