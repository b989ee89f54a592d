package resolver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/pkgup/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func projectManifest(t *testing.T, data string) *domain.ProjectManifest {
	t.Helper()
	var m domain.ProjectManifest
	require.NoError(t, json.Unmarshal([]byte(data), &m))
	return &m
}

func TestBuildPlan_RewritesManifestAndEmitsTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.NewResolver(nil, nil, relaxedLogger(ctrl))

	manifest := projectManifest(t, `{
		"name": "demo",
		"dependencies": {"pkg-core": "^1.0.0", "pkg-cli": "^1.0.0"}
	}`)

	core := pkgInfo("pkg-core", "1.2.0", "2.0.0")
	core.Target.Upgrade = domain.UpgradeMetadata{Migrations: "schematics/migrations.json"}
	cli := pkgInfo("pkg-cli", "1.2.0", "2.0.0")

	plan, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-core": core, "pkg-cli": cli}, manifest)
	require.NoError(t, err)

	require.True(t, plan.HasManifestChange())
	var updated domain.ProjectManifest
	require.NoError(t, json.Unmarshal(plan.Manifest, &updated))
	assert.Equal(t, "2.0.0", updated.Dependencies["pkg-core"])
	assert.Equal(t, "2.0.0", updated.Dependencies["pkg-cli"])

	// Only the package shipping migrations produces a task, and a bare
	// collection value is resolved relative to the package.
	require.Len(t, plan.Tasks, 1)
	task := plan.Tasks[0]
	assert.Equal(t, "pkg-core", task.Package)
	assert.Equal(t, "pkg-core/schematics/migrations.json", task.Collection)
	assert.Equal(t, "1.2.0", task.From.String())
	assert.Equal(t, "2.0.0", task.To.String())
}

func TestBuildPlan_ExplicitCollectionPathIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.NewResolver(nil, nil, relaxedLogger(ctrl))

	manifest := projectManifest(t, `{"dependencies": {"pkg-core": "^1.0.0"}}`)

	core := pkgInfo("pkg-core", "1.2.0", "2.0.0")
	core.Target.Upgrade = domain.UpgradeMetadata{Migrations: "./collection.json"}

	plan, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-core": core}, manifest)
	require.NoError(t, err)

	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "./collection.json", plan.Tasks[0].Collection)
}

func TestBuildPlan_NoTargetsYieldsEmptyPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.NewResolver(nil, nil, relaxedLogger(ctrl))

	manifest := projectManifest(t, `{"dependencies": {"pkg-core": "^1.0.0"}}`)
	core := pkgInfo("pkg-core", "1.2.0", "")

	plan, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-core": core}, manifest)
	require.NoError(t, err)

	assert.True(t, plan.IsEmpty())
	assert.False(t, plan.HasManifestChange())
}

func TestBuildPlan_UndeclaredTargetLeavesManifestAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := relaxedLogger(ctrl)
	r := resolver.NewResolver(nil, nil, log)

	manifest := projectManifest(t, `{"dependencies": {"pkg-core": "^1.0.0"}}`)

	// A peer-injected package the project never declared: warned about,
	// manifest untouched.
	peer := pkgInfo("pkg-peer", "1.0.0", "2.0.0")

	plan, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-peer": peer}, manifest)
	require.NoError(t, err)

	assert.False(t, plan.HasManifestChange())
}

func TestBuildPlan_OriginalManifestIsNotMutated(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.NewResolver(nil, nil, relaxedLogger(ctrl))

	manifest := projectManifest(t, `{"dependencies": {"pkg-core": "^1.0.0"}}`)
	core := pkgInfo("pkg-core", "1.2.0", "2.0.0")

	_, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-core": core}, manifest)
	require.NoError(t, err)

	assert.Equal(t, "^1.0.0", manifest.Dependencies["pkg-core"])
}

func TestBuildPlan_TasksAreSortedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.NewResolver(nil, nil, relaxedLogger(ctrl))

	manifest := projectManifest(t, `{"dependencies": {"pkg-a": "^1.0.0", "pkg-b": "^1.0.0"}}`)

	a := pkgInfo("pkg-a", "1.0.0", "2.0.0")
	a.Target.Upgrade = domain.UpgradeMetadata{Migrations: "m.json"}
	b := pkgInfo("pkg-b", "1.0.0", "2.0.0")
	b.Target.Upgrade = domain.UpgradeMetadata{Migrations: "m.json"}

	plan, err := r.BuildPlan(map[string]*domain.PackageInfo{"pkg-b": b, "pkg-a": a}, manifest)
	require.NoError(t, err)

	require.Len(t, plan.Tasks, 2)
	assert.Equal(t, "pkg-a", plan.Tasks[0].Package)
	assert.Equal(t, "pkg-b", plan.Tasks[1].Package)
}
