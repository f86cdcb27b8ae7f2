package domain

// Table is a mongo collection name
type Table string

const (
	TableAccessRegistry   Table = "access_registry"
	TableAccounts         Table = "accounts"
	TableFungibleTokens   Table = "fungible_tokens"
	TableFungibleBalances Table = "fungible_balances"
	TableNftTokens        Table = "nft_tokens"
	TableNftHoldings      Table = "nft_holdings"
	TableCollections      Table = "collections"
	TableCollectionState  Table = "collection_factory"
	TableMarketItems      Table = "market_items"
	TableOrders           Table = "orders"
	TableAuctions         Table = "auctions"
	TableStakingPools     Table = "staking_pools"
	TableStakingPositions Table = "staking_positions"
	TableEvents           Table = "events"
	TableCounters         Table = "counters"
)
