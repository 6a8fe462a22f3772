package config

// WeaponConfig describes one item slot of a scenario.
type WeaponConfig struct {
	Name         string  `mapstructure:"name"`
	Kind         string  `mapstructure:"kind"`
	Magazine     int     `mapstructure:"magazine"`
	Loaded       int     `mapstructure:"loaded"`
	Reserve      int     `mapstructure:"reserve"`
	FireInterval float64 `mapstructure:"fire_interval"`
	Damage       int     `mapstructure:"damage"`
	Sound        string  `mapstructure:"sound"`
	Shake        bool    `mapstructure:"shake"`

	// Ammo pickups for this weapon. PickupTag is the sprite tag, PickupRolls
	// the spawn roll values that drop one.
	PickupTag    string `mapstructure:"pickup_tag"`
	PickupAmount int    `mapstructure:"pickup_amount"`
	PickupRolls  []int  `mapstructure:"pickup_rolls"`
}

// Scenario holds every tunable of a run. Distances are world units, times
// are seconds, movement speeds are world units per tick.
type Scenario struct {
	Name  string `mapstructure:"name"`
	Level string `mapstructure:"level"`
	Goal  int    `mapstructure:"goal"`

	// Player
	Health          int     `mapstructure:"health"`
	PlayerSpeed     float64 `mapstructure:"player_speed"`
	SprintModifier  float64 `mapstructure:"sprint_modifier"`
	LookSensitivity float64 `mapstructure:"look_sensitivity"` // radians per pixel
	GrappleSpeed    float64 `mapstructure:"grapple_speed"`
	GrappleStop     float64 `mapstructure:"grapple_stop"`
	PickupRadius    float64 `mapstructure:"pickup_radius"`

	// Spawning
	RollRange      int     `mapstructure:"roll_range"`
	EnemyRolls     []int   `mapstructure:"enemy_rolls"`
	MaxEnemies     int     `mapstructure:"max_enemies"`
	MaxAmmoPickups int     `mapstructure:"max_ammo_pickups"`
	EnemySpeedMin  float64 `mapstructure:"enemy_speed_min"`
	EnemySpeedMax  float64 `mapstructure:"enemy_speed_max"`
	EnemyWidth     float64 `mapstructure:"enemy_width"`
	EnemyHeight    float64 `mapstructure:"enemy_height"`
	PickupWidth    float64 `mapstructure:"pickup_width"`
	PickupHeight   float64 `mapstructure:"pickup_height"`

	// Combat
	ReloadTime         float64 `mapstructure:"reload_time"`
	DeathGrace         float64 `mapstructure:"death_grace"`
	HurtCooldown       float64 `mapstructure:"hurt_cooldown"`
	LethalRadius       float64 `mapstructure:"lethal_radius"`
	JabWindow          float64 `mapstructure:"jab_window"`
	MeleeRadius        float64 `mapstructure:"melee_radius"`
	MeleeFacing        float64 `mapstructure:"melee_facing"` // minimum dot product
	ShotSwap           float64 `mapstructure:"shot_swap"`
	HitMarker          float64 `mapstructure:"hit_marker"`
	KnockbackSpeed     float64 `mapstructure:"knockback_speed"`
	KnockbackShortfall float64 `mapstructure:"knockback_shortfall"`
	KnockbackFlight    float64 `mapstructure:"knockback_flight"`
	Jitter             float64 `mapstructure:"jitter"`

	// Feedback, amplitudes in screen pixels
	ImpactShakeTime      float64 `mapstructure:"impact_shake_time"`
	ImpactShakeAmplitude float64 `mapstructure:"impact_shake_amplitude"`
	WeaponShakeTime      float64 `mapstructure:"weapon_shake_time"`
	WeaponShakeAmplitude float64 `mapstructure:"weapon_shake_amplitude"`
	FlashTime            float64 `mapstructure:"flash_time"`

	Weapons []WeaponConfig `mapstructure:"weapons"`
}

// Config is the resolved startup configuration.
type Config struct {
	Scenario     Scenario
	Fog          bool
	Title        string
	ScreenWidth  int
	ScreenHeight int
}

const DefaultScenario = "classic"

// Default returns the classic scenario with every value filled in.
func Default() Scenario {
	return Scenario{
		Name:  DefaultScenario,
		Level: "maps/warehouse.tmx",
		Goal:  5,

		Health:          3,
		PlayerSpeed:     2,
		SprintModifier:  1.5,
		LookSensitivity: 0.0025,
		GrappleSpeed:    8,
		GrappleStop:     20,
		PickupRadius:    20,

		RollRange:      100,
		EnemyRolls:     []int{1},
		MaxEnemies:     15,
		MaxAmmoPickups: 3,
		EnemySpeedMin:  1,
		EnemySpeedMax:  4,
		EnemyWidth:     20,
		EnemyHeight:    30,
		PickupWidth:    16,
		PickupHeight:   16,

		ReloadTime:         2.0,
		DeathGrace:         1.0,
		HurtCooldown:       1.0,
		LethalRadius:       20,
		JabWindow:          0.1,
		MeleeRadius:        30,
		MeleeFacing:        0.2,
		ShotSwap:           0.1,
		HitMarker:          0.15,
		KnockbackSpeed:     12,
		KnockbackShortfall: 5,
		KnockbackFlight:    0.75,
		Jitter:             1.5,

		ImpactShakeTime:      0.1,
		ImpactShakeAmplitude: 10,
		WeaponShakeTime:      0.05,
		WeaponShakeAmplitude: 4,
		FlashTime:            1.0,

		Weapons: []WeaponConfig{
			{
				Name:         "pistol",
				Kind:         "single",
				Magazine:     16,
				Loaded:       16,
				Reserve:      32,
				Damage:       3,
				Sound:        "shoot",
				PickupTag:    "a",
				PickupAmount: 32,
				PickupRolls:  []int{2},
			},
		},
	}
}

func defaultConfig() *Config {
	return &Config{
		Scenario:     Default(),
		Title:        "nutcaster",
		ScreenWidth:  800,
		ScreenHeight: 800,
	}
}
