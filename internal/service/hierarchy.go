package service

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// supervisorLookup 回傳某員工目前的直屬主管 id（沒有主管時回 nil）
type supervisorLookup func(id primitive.ObjectID) (*primitive.ObjectID, error)

// wouldCreateCycle 判斷把 candidate 設為 employee 的主管是否會成環：
// 從 candidate 沿主管鏈上溯，途中遇到 employee 即成環。
// visited set 保證即使既有資料已壞（鏈上有環）也會終止，不會無窮迴圈。
// 只讀不寫；呼叫端在通過檢查前不得改動任何資料
func wouldCreateCycle(employeeID, candidateID primitive.ObjectID, lookup supervisorLookup) (bool, error) {
	visited := map[primitive.ObjectID]struct{}{}
	current := candidateID
	for {
		if current == employeeID {
			return true, nil
		}
		if _, seen := visited[current]; seen {
			// 既有資料已成環；指派不會再引入新的環，但鏈已不可信
			return false, fmt.Errorf("supervisor chain already contains a cycle at %s", current.Hex())
		}
		visited[current] = struct{}{}

		next, err := lookup(current)
		if err != nil {
			return false, err
		}
		if next == nil {
			return false, nil
		}
		current = *next
	}
}
