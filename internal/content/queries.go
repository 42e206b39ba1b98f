package content

// GROQ queries. Projections alias document fields onto the wire shape the
// domain types expect (`id`, flattened slugs, resolved asset URLs).

const productFields = `
  "id": _id,
  name,
  "slug": slug.current,
  description,
  price,
  currency,
  "image": image.asset->url,
  category->{name, "slug": slug.current},
  inStock,
  isNew,
  createdAt
`

const heroQuery = `*[_type == "hero"] | order(order asc){
  "id": _id,
  title,
  subtitle,
  "backgroundImage": backgroundImage.asset->url,
  "ctaText": ctaButton.text,
  "ctaLink": ctaButton.link,
  order
}`

const categoriesQuery = `*[_type == "category"] | order(order asc){
  "id": _id,
  name,
  "slug": slug.current,
  description,
  "backgroundImage": backgroundImage.asset->url,
  buttonText,
  order
}`

const productsQuery = `*[_type == "product" && inStock == true] | order(createdAt desc){` + productFields + `}`

const categoryProductsQuery = `*[_type == "product" && category->slug.current == $category && inStock == true] | order(createdAt desc){` + productFields + `}`

// Products created in the last 30 days; when empty the caller falls back to
// the newest six regardless of age.
const newProductsQuery = `*[_type == "product" && inStock == true && dateTime(createdAt) > dateTime(now()) - 60*60*24*30] | order(createdAt desc)[0...6]{` + productFields + `}`

const newestFallbackQuery = `*[_type == "product" && inStock == true] | order(createdAt desc)[0...6]{` + productFields + `}`

const productBySlugQuery = `*[_type == "product" && slug.current == $slug][0]{` + productFields + `,
  "gallery": gallery[].asset->url,
  "options": options[]{name, required, multiple, choices[]{label, extraPrice}},
  "variants": variants[]{title, stock, price},
  "relatedProducts": relatedProducts[]->{
    "id": _id,
    name,
    "slug": slug.current,
    price,
    "image": image.asset->url,
    category->{name, "slug": slug.current},
    inStock
  },
  stock
}`

const siteSettingsQuery = `*[_type == "siteSettings"][0]{
  title,
  description,
  "logo": logo.asset->url,
  phone,
  email,
  socialMedia,
  shippingInfo,
  paymentMethods
}`

const instagramPostsQuery = `*[_type == "instagramPost"] | order(publishedAt desc)[0...4]{
  "id": _id,
  "image": image.asset->url,
  caption,
  link,
  publishedAt
}`

const aboutQuery = `*[_type == "about"][0]{
  title,
  description,
  "image": image.asset->url,
  features
}`

// slugAuditQuery lists every product's identity and slug for the slug
// repair tool.
const slugAuditQuery = `*[_type == "product"]{"id": _id, name, "slug": slug.current}`
