package systems

// Tick phase IDs, in execution order. The perf collector and HUD key off these.
const (
	PhaseInput     = "input"
	PhaseMovement  = "movement"
	PhaseShooting  = "shooting"
	PhaseCollision = "collision"
	PhaseCleanup   = "cleanup"
	PhaseSpawn     = "spawn"
)

// SystemInfo describes a tick phase for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this phase does
	Category    string // Grouping (e.g., "core", "combat")
}

// SystemRegistry holds metadata about all tick phases.
// This centralizes naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the tick phases in execution order.
// Update this when adding new phases.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PhaseInput, Name: "Input", Description: "Copies held keys and AI decisions into intents", Category: "core"})
	r.Register(SystemInfo{ID: PhaseMovement, Name: "Movement", Description: "Integrates intents into boxes", Category: "core"})
	r.Register(SystemInfo{ID: PhaseShooting, Name: "Shooting", Description: "Fires through the cooldown gate", Category: "combat"})
	r.Register(SystemInfo{ID: PhaseCollision, Name: "Collision", Description: "Applies projectile and contact hits", Category: "combat"})
	r.Register(SystemInfo{ID: PhaseCleanup, Name: "Cleanup", Description: "Removes destroyed and off-canvas actors", Category: "core"})
	r.Register(SystemInfo{ID: PhaseSpawn, Name: "Spawn", Description: "Spawns enemies on the configured interval", Category: "core"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
