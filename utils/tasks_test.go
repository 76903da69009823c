package utils

import (
	"testing"

	"backoffice/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func chainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Task{}))
	return db
}

func TestTaskChainWalk(t *testing.T) {
	db := chainDB(t)

	root := models.Task{Title: "root", Description: "d"}
	require.NoError(t, db.Create(&root).Error)
	mid := models.Task{Title: "mid", Description: "d", OriginTaskID: &root.ID}
	require.NoError(t, db.Create(&mid).Error)
	leaf := models.Task{Title: "leaf", Description: "d", OriginTaskID: &mid.ID}
	require.NoError(t, db.Create(&leaf).Error)

	chain, err := TaskChainIDs(leaf, db)
	require.NoError(t, err)
	require.Equal(t, []uint{leaf.ID, mid.ID, root.ID}, chain)

	found, err := FindRootTask(leaf, db)
	require.NoError(t, err)
	require.Equal(t, root.ID, found.ID)

	// A root task is its own root.
	found, err = FindRootTask(root, db)
	require.NoError(t, err)
	require.Equal(t, root.ID, found.ID)
}

func TestTaskChainGuardsAgainstCycles(t *testing.T) {
	db := chainDB(t)

	a := models.Task{Title: "a", Description: "d"}
	require.NoError(t, db.Create(&a).Error)
	b := models.Task{Title: "b", Description: "d", OriginTaskID: &a.ID}
	require.NoError(t, db.Create(&b).Error)

	// Malformed data: close the loop behind the invariant's back.
	require.NoError(t, db.Model(&a).Update("origin_task_id", b.ID).Error)
	a.OriginTaskID = &b.ID

	_, err := TaskChainIDs(b, db)
	require.Error(t, err)
	_, err = FindRootTask(a, db)
	require.Error(t, err)
}

func TestTaskChainToleratesDeletedOrigin(t *testing.T) {
	db := chainDB(t)

	root := models.Task{Title: "root", Description: "d"}
	require.NoError(t, db.Create(&root).Error)
	leaf := models.Task{Title: "leaf", Description: "d", OriginTaskID: &root.ID}
	require.NoError(t, db.Create(&leaf).Error)

	require.NoError(t, db.Delete(&models.Task{}, root.ID).Error)

	chain, err := TaskChainIDs(leaf, db)
	require.NoError(t, err)
	require.Equal(t, []uint{leaf.ID}, chain)
}
