package usecase

// DefaultPageSize is the number of records fetched per collection
const DefaultPageSize = 10

// tokenTransactionsQuery fetches the latest mints, swaps and burns of every pair
// the token belongs to, on either side of the pair.
const tokenTransactionsQuery = `
query tokenTransactions($address: Bytes!, $first: Int!) {
  mintsAs0: mints(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token0: $address } }) {
    ...mintFields
  }
  mintsAs1: mints(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token1: $address } }) {
    ...mintFields
  }
  swapsAs0: swaps(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token0: $address } }) {
    ...swapFields
  }
  swapsAs1: swaps(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token1: $address } }) {
    ...swapFields
  }
  burnsAs0: burns(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token0: $address } }) {
    ...burnFields
  }
  burnsAs1: burns(first: $first, orderBy: timestamp, orderDirection: desc, where: { pair_: { token1: $address } }) {
    ...burnFields
  }
}

fragment pairFields on Pair {
  token0 {
    id
    symbol
  }
  token1 {
    id
    symbol
  }
}

fragment mintFields on Mint {
  id
  timestamp
  pair {
    ...pairFields
  }
  to
  amount0
  amount1
  amountUSD
}

fragment swapFields on Swap {
  id
  timestamp
  pair {
    ...pairFields
  }
  from
  amount0In
  amount1In
  amount0Out
  amount1Out
  amountUSD
}

fragment burnFields on Burn {
  id
  timestamp
  pair {
    ...pairFields
  }
  sender
  amount0
  amount1
  amountUSD
}
`
