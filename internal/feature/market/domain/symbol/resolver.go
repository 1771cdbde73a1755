// Package symbol maps user-facing tickers to CoinGecko coin ids.
package symbol

import "strings"

// aliases maps lower-case tickers to CoinGecko ids.
var aliases = map[string]string{
	"btc":    "bitcoin",
	"eth":    "ethereum",
	"usdt":   "tether",
	"bnb":    "binancecoin",
	"sol":    "solana",
	"xrp":    "ripple",
	"usdc":   "usd-coin",
	"doge":   "dogecoin",
	"ada":    "cardano",
	"trx":    "tron",
	"avax":   "avalanche-2",
	"shib":   "shiba-inu",
	"ton":    "the-open-network",
	"link":   "chainlink",
	"dot":    "polkadot",
	"bch":    "bitcoin-cash",
	"near":   "near",
	"matic":  "matic-network",
	"pol":    "polygon-ecosystem-token",
	"ltc":    "litecoin",
	"uni":    "uniswap",
	"atom":   "cosmos",
	"icp":    "internet-computer",
	"dai":    "dai",
	"etc":    "ethereum-classic",
	"apt":    "aptos",
	"xlm":    "stellar",
	"xmr":    "monero",
	"okb":    "okb",
	"fil":    "filecoin",
	"hbar":   "hedera-hashgraph",
	"arb":    "arbitrum",
	"op":     "optimism",
	"vet":    "vechain",
	"mkr":    "maker",
	"inj":    "injective-protocol",
	"imx":    "immutable-x",
	"grt":    "the-graph",
	"rndr":   "render-token",
	"render": "render-token",
	"stx":    "blockstack",
	"sui":    "sui",
	"aave":   "aave",
	"algo":   "algorand",
	"egld":   "elrond-erd-2",
	"qnt":    "quant-network",
	"sand":   "the-sandbox",
	"mana":   "decentraland",
	"axs":    "axie-infinity",
	"theta":  "theta-token",
	"xtz":    "tezos",
	"eos":    "eos",
	"flow":   "flow",
	"kcs":    "kucoin-shares",
	"neo":    "neo",
	"chz":    "chiliz",
	"ftm":    "fantom",
	"kava":   "kava",
	"zec":    "zcash",
	"dash":   "dash",
	"crv":    "curve-dao-token",
	"snx":    "havven",
	"ldo":    "lido-dao",
	"rune":   "thorchain",
	"mina":   "mina-protocol",
	"gala":   "gala",
	"iota":   "iota",
	"xdc":    "xdce-crowd-sale",
	"cake":   "pancakeswap-token",
	"comp":   "compound-governance-token",
	"1inch":  "1inch",
	"enj":    "enjincoin",
	"bat":    "basic-attention-token",
	"zil":    "zilliqa",
	"ksm":    "kusama",
	"waves":  "waves",
	"celo":   "celo",
	"hot":    "holotoken",
	"qtum":   "qtum",
	"rvn":    "ravencoin",
	"ankr":   "ankr",
	"yfi":    "yearn-finance",
	"sushi":  "sushi",
	"lrc":    "loopring",
	"ens":    "ethereum-name-service",
	"gmx":    "gmx",
	"pepe":   "pepe",
	"wif":    "dogwifcoin",
	"bonk":   "bonk",
	"floki":  "floki",
	"sei":    "sei-network",
	"tia":    "celestia",
	"jup":    "jupiter-exchange-solana",
	"pyth":   "pyth-network",
	"wld":    "worldcoin-wld",
	"ondo":   "ondo-finance",
	"ena":    "ethena",
	"fet":    "fetch-ai",
	"kas":    "kaspa",
	"tao":    "bittensor",
	"wbtc":   "wrapped-bitcoin",
	"steth":  "staked-ether",
	"leo":    "leo-token",
	"cro":    "crypto-com-chain",
	"busd":   "binance-usd",
	"tusd":   "true-usd",
	"fdusd":  "first-digital-usd",
	"bgb":    "bitget-token",
	"gt":     "gatechain-token",
	"ht":     "huobi-token",
	"xaut":   "tether-gold",
	"paxg":   "pax-gold",
	"trump":  "official-trump",
}

// Resolve returns the CoinGecko id for a ticker. Lookup is case-insensitive.
// Unknown tickers resolve to their lower-cased input, so a typo surfaces later as an
// upstream 404 rather than failing here.
func Resolve(ticker string) string {
	key := strings.ToLower(strings.TrimSpace(ticker))
	if id, ok := aliases[key]; ok {
		return id
	}
	return key
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
