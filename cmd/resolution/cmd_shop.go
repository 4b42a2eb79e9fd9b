package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"resolution/cmd/resolution/ui"
	"resolution/internal/logging"
	"resolution/internal/storage"
)

// shopCmd manages the reward shop: things you promise yourself in exchange
// for coins earned in the morning routine.
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage the reward shop",
	RunE:  runShopList,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shop items",
	RunE:  runShopList,
}

var shopAddCmd = &cobra.Command{
	Use:   "add [name] [cost]",
	Short: "Add a reward to the shop",
	Args:  cobra.ExactArgs(2),
	RunE:  runShopAdd,
}

var shopUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change a reward's name or cost",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopUpdate,
}

var shopDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a reward from the shop",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopDelete,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy [id]",
	Short: "Buy a reward with earned coins",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopBuy,
}

var (
	shopUpdateName string
	shopUpdateCost int
)

func init() {
	shopUpdateCmd.Flags().StringVar(&shopUpdateName, "name", "", "New name")
	shopUpdateCmd.Flags().IntVar(&shopUpdateCost, "cost", -1, "New cost")

	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopUpdateCmd)
	shopCmd.AddCommand(shopDeleteCmd)
	shopCmd.AddCommand(shopBuyCmd)
}

// shopTable renders the item list, marking purchased rewards.
func shopTable(items []storage.ShopItem, styles ui.Styles) string {
	table := ui.NewSimpleTable("Reward shop", []string{"ID", "Reward", "Cost", "Status"})
	for _, item := range items {
		status := "available"
		if item.Purchased {
			status = "purchased"
		}
		table.AddRow(strconv.Itoa(item.ID), item.Name, strconv.Itoa(item.Cost), status)
	}
	return table.View(styles)
}

func runShopList(cmd *cobra.Command, args []string) error {
	store, _, err := openEnv()
	if err != nil {
		return err
	}
	styles := ui.DefaultStyles()

	items := store.ShopItems()
	if len(items) == 0 {
		fmt.Println("The shop is empty. Add a reward with 'resolution shop add'.")
		return nil
	}
	fmt.Print(shopTable(items, styles))
	fmt.Printf("Balance: %s\n", styles.Coin.Render(fmt.Sprintf("%d coins", store.Coins())))
	return nil
}

func runShopAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openEnv()
	if err != nil {
		return err
	}

	cost, err := strconv.Atoi(args[1])
	if err != nil || cost < 0 {
		return fmt.Errorf("cost must be a non-negative number, got %q", args[1])
	}

	item, err := store.AddShopItem(args[0], cost)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryShop).Info("added item %d %q for %d", item.ID, item.Name, item.Cost)
	fmt.Printf("Added %q for %d coins (id %d).\n", item.Name, item.Cost, item.ID)
	return nil
}

func runShopUpdate(cmd *cobra.Command, args []string) error {
	store, _, err := openEnv()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	found, err := store.UpdateShopItem(id, shopUpdateName, shopUpdateCost)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no shop item with id %d", id)
	}
	fmt.Printf("Updated item %d.\n", id)
	return nil
}

func runShopDelete(cmd *cobra.Command, args []string) error {
	store, _, err := openEnv()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	found, err := store.DeleteShopItem(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no shop item with id %d", id)
	}
	fmt.Printf("Deleted item %d.\n", id)
	return nil
}

func runShopBuy(cmd *cobra.Command, args []string) error {
	store, _, err := openEnv()
	if err != nil {
		return err
	}
	styles := ui.DefaultStyles()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	bought, message, err := store.PurchaseShopItem(id)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryShop).Info("purchase item %d: %s", id, message)
	if bought {
		fmt.Println(styles.Success.Render(message))
		fmt.Printf("Balance: %s\n", styles.Coin.Render(fmt.Sprintf("%d coins", store.Coins())))
	} else {
		fmt.Println(styles.Warning.Render(message))
	}
	return nil
}
