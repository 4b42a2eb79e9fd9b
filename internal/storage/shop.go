package storage

import (
	"fmt"
	"path/filepath"
)

// ShopItem is a purchasable reward in the coin economy.
type ShopItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Cost      int    `json:"cost"`
	Purchased bool   `json:"purchased"`
}

func (s *FileStore) shopPath() string { return filepath.Join(s.dir, shopFile) }

// ShopItems returns all shop items in insertion order.
func (s *FileStore) ShopItems() []ShopItem {
	var items []ShopItem
	readJSON(s.shopPath(), &items)
	return items
}

func (s *FileStore) saveShopItems(items []ShopItem) error {
	return s.writeJSON(s.shopPath(), items)
}

// AddShopItem appends a new item and returns it with its assigned id.
func (s *FileStore) AddShopItem(name string, cost int) (ShopItem, error) {
	items := s.ShopItems()
	item := ShopItem{ID: nextShopID(items), Name: name, Cost: cost}
	if err := s.saveShopItems(append(items, item)); err != nil {
		return ShopItem{}, err
	}
	return item, nil
}

// nextShopID assigns ids monotonically so deleting an item never causes a
// later item to reuse its id.
func nextShopID(items []ShopItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// UpdateShopItem changes the name and/or cost of an item. Empty name or
// negative cost leaves the respective field unchanged. Returns false when
// the id does not exist.
func (s *FileStore) UpdateShopItem(id int, name string, cost int) (bool, error) {
	items := s.ShopItems()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if name != "" {
			items[i].Name = name
		}
		if cost >= 0 {
			items[i].Cost = cost
		}
		return true, s.saveShopItems(items)
	}
	return false, nil
}

// DeleteShopItem removes an item. Returns false when the id does not exist.
func (s *FileStore) DeleteShopItem(id int) (bool, error) {
	items := s.ShopItems()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, s.saveShopItems(kept)
}

// PurchaseShopItem buys an item, debiting its cost from the coin balance.
// The returned message is user-facing either way.
func (s *FileStore) PurchaseShopItem(id int) (bool, string, error) {
	items := s.ShopItems()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].Purchased {
			return false, "Item already purchased!", nil
		}
		spent, err := s.SpendCoins(items[i].Cost)
		if err != nil {
			return false, "", err
		}
		if !spent {
			return false, fmt.Sprintf("Not enough coins! Need %d, have %d", items[i].Cost, s.Coins()), nil
		}
		items[i].Purchased = true
		if err := s.saveShopItems(items); err != nil {
			return false, "", err
		}
		return true, fmt.Sprintf("Purchased %s!", items[i].Name), nil
	}
	return false, "Item not found", nil
}
