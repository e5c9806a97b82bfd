package shopify

const cartCreateMutation = `
  mutation CartCreate($lines:[CartLineInput!]) {
    cartCreate(input:{lines:$lines}) {
      cart { id checkoutUrl totalQuantity }
      userErrors { field message }
    }
  }
`

const cartLinesAddMutation = `
  mutation CartLinesAdd($cartId:ID!, $lines:[CartLineInput!]!) {
    cartLinesAdd(cartId:$cartId, lines:$lines) {
      cart { id checkoutUrl totalQuantity }
      userErrors { field message }
    }
  }
`

const cartLinesUpdateMutation = `
  mutation CartLinesUpdate($cartId:ID!, $lines:[CartLineUpdateInput!]!) {
    cartLinesUpdate(cartId:$cartId, lines:$lines) {
      cart { id checkoutUrl totalQuantity }
      userErrors { field message }
    }
  }
`

const cartLinesRemoveMutation = `
  mutation CartLinesRemove($cartId:ID!, $lineIds:[ID!]!) {
    cartLinesRemove(cartId:$cartId, lineIds:$lineIds) {
      cart { id checkoutUrl totalQuantity }
      userErrors { field message }
    }
  }
`

const cartQuery = `
  query CartQuery($cartId:ID!) {
    cart(id:$cartId) {
      id checkoutUrl totalQuantity
      cost { subtotalAmount { amount currencyCode } totalAmount { amount currencyCode } }
      lines(first:100) { edges { node {
        id quantity
        merchandise { ... on ProductVariant {
          id title
          image { url altText }
          product { title handle }
          price { amount currencyCode }
          compareAtPrice { amount currencyCode }
        } }
      } } }
    }
  }
`

const productByHandleQuery = `
  query ProductByHandle($handle:String!) {
    product(handle:$handle) {
      id title handle description
      featuredImage { url altText }
      variants(first:50) { edges { node {
        id title availableForSale
        price { amount currencyCode }
        compareAtPrice { amount currencyCode }
        image { url altText }
      } } }
    }
  }
`

// The Admin API has no cart surface, so it only backs up product lookup.
const adminProductSearchQuery = `
  query AdminProductSearch($query: String!) {
    products(first: 1, query: $query) {
      nodes {
        id
        handle
        title
        description
        featuredImage { url altText }
        variants(first: 50) {
          nodes {
            id
            title
            availableForSale
            price
            compareAtPrice
            image { url altText }
          }
        }
      }
    }
  }
`
