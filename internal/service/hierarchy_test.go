package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// chainLookup 以 map 模擬主管鏈：key 的主管是 value
func chainLookup(chain map[primitive.ObjectID]primitive.ObjectID) supervisorLookup {
	return func(id primitive.ObjectID) (*primitive.ObjectID, error) {
		next, ok := chain[id]
		if !ok {
			return nil, nil
		}
		return &next, nil
	}
}

func TestWouldCreateCycle_DirectCycle(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	// b 的主管鏈：b → a；把 b 設為 a 的主管會成環
	cycle, err := wouldCreateCycle(a, b, chainLookup(map[primitive.ObjectID]primitive.ObjectID{
		b: a,
	}))
	require.NoError(t, err)
	assert.True(t, cycle)
}

func TestWouldCreateCycle_DeepChain(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	d := primitive.NewObjectID()

	// d → c → b → a；把 d 設為 a 的主管會成環
	chain := map[primitive.ObjectID]primitive.ObjectID{
		d: c,
		c: b,
		b: a,
	}
	cycle, err := wouldCreateCycle(a, d, chainLookup(chain))
	require.NoError(t, err)
	assert.True(t, cycle)

	// 反向不成環：把 a 的上層設給 d 底下的人不影響 a 自己
	cycle, err = wouldCreateCycle(d, a, chainLookup(map[primitive.ObjectID]primitive.ObjectID{}))
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestWouldCreateCycle_NoCycle(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	root := primitive.NewObjectID()

	// b 的主管鏈到 root 為止，不經過 a
	chain := map[primitive.ObjectID]primitive.ObjectID{
		b: root,
	}
	cycle, err := wouldCreateCycle(a, b, chainLookup(chain))
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestWouldCreateCycle_CandidateWithoutSupervisor(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	cycle, err := wouldCreateCycle(a, b, chainLookup(nil))
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestWouldCreateCycle_CandidateIsEmployee(t *testing.T) {
	a := primitive.NewObjectID()

	// 自我指派在 service 層先擋，但核心演算法也要立刻回報成環
	cycle, err := wouldCreateCycle(a, a, chainLookup(nil))
	require.NoError(t, err)
	assert.True(t, cycle)
}

func TestWouldCreateCycle_CorruptChainTerminates(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	// 既有資料已壞：b ↔ c 互為主管，a 不在鏈上
	chain := map[primitive.ObjectID]primitive.ObjectID{
		b: c,
		c: b,
	}
	cycle, err := wouldCreateCycle(a, b, chainLookup(chain))
	require.Error(t, err)
	assert.False(t, cycle)
}

func TestWouldCreateCycle_LookupErrorPropagates(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	boom := errors.New("boom")

	_, err := wouldCreateCycle(a, b, func(primitive.ObjectID) (*primitive.ObjectID, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}
