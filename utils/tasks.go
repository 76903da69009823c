package utils

import (
	"errors"
	"fmt"

	"backoffice/models"

	"gorm.io/gorm"
)

// TaskChainIDs walks origin_task_id links from task back to its root and
// returns the ids in walk order (task first, root last). Chains are acyclic
// by construction since forwarding only ever links a new task to an existing
// one; the visited set guards against malformed data anyway.
func TaskChainIDs(task models.Task, db *gorm.DB) ([]uint, error) {
	visited := map[uint]bool{task.ID: true}
	chain := []uint{task.ID}

	current := task
	for current.OriginTaskID != nil {
		var origin models.Task
		if err := db.First(&origin, *current.OriginTaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Origin was hard-deleted; the dangling id is kept for
				// history and the chain simply ends here.
				return chain, nil
			}
			return nil, err
		}
		if visited[origin.ID] {
			return nil, fmt.Errorf("forwarding chain of task %d revisits task %d", task.ID, origin.ID)
		}
		visited[origin.ID] = true
		chain = append(chain, origin.ID)
		current = origin
	}

	return chain, nil
}

// FindRootTask resolves the task a forwarding chain started from.
func FindRootTask(task models.Task, db *gorm.DB) (models.Task, error) {
	ids, err := TaskChainIDs(task, db)
	if err != nil {
		return models.Task{}, err
	}

	rootID := ids[len(ids)-1]
	if rootID == task.ID {
		return task, nil
	}

	var root models.Task
	if err := db.First(&root, rootID).Error; err != nil {
		return models.Task{}, err
	}
	return root, nil
}
