package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graftt/internal/classfile"
)

func methods(keys ...string) []*classfile.MethodDefinition {
	var out []*classfile.MethodDefinition
	for i := 0; i+1 < len(keys); i += 2 {
		out = append(out, &classfile.MethodDefinition{Name: keys[i], Desc: keys[i+1]})
	}

	return out
}

func TestRankMethods(t *testing.T) {
	have := methods(
		"<init>", "()V",
		"inc", "()I",
		"incr", "(I)I",
		"toString", "()Ljava/lang/String;",
		"inc", "(J)J",
	)

	got := RankMethods(classfile.MethodKey{Name: "inc", Desc: "()J"}, have, DefaultThreshold)
	require.NotEmpty(t, got)

	// Same name and arity beats same name with different arity.
	assert.Equal(t, "inc()I", got[0].Key.String())
	assert.Equal(t, []string{"inc()I", "inc(J)J"}, got.Keys(2))

	for _, c := range got {
		assert.NotEqual(t, "<init>", c.Key.Name, "initializers are never suggested")
		assert.NotEqual(t, "toString", c.Key.Name)
		assert.GreaterOrEqual(t, c.Score, DefaultThreshold)
	}
}

func TestRankMethods_ExactDescriptor(t *testing.T) {
	have := methods("count", "()I", "inc", "()J")

	got := RankMethods(classfile.MethodKey{Name: "incr", Desc: "()J"}, have, DefaultThreshold)
	require.Len(t, got, 1)
	assert.True(t, got[0].SameDesc)
	assert.True(t, got[0].SameArity)
	assert.InDelta(t, 0.7*0.75+0.3, got[0].Score, 0.001)
}

func TestRankMethods_NoCandidates(t *testing.T) {
	got := RankMethods(classfile.MethodKey{Name: "zzz", Desc: "(IIII)V"}, methods("inc", "()I"), DefaultThreshold)
	assert.Empty(t, got)
	assert.Nil(t, got.Keys(3))
}
