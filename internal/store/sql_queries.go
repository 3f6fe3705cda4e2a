package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, cart_data)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, name, email, password_hash, role, cart_data, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, cart_data, created_at, updated_at
    FROM users
    WHERE email = $1;`

	getUserCart = `SELECT cart_data
    FROM users
    WHERE user_id = $1;`

	updateUserCart = `UPDATE users
    SET cart_data = $2, updated_at = NOW()
    WHERE user_id = $1;`

	createProduct = `INSERT INTO products (name, description, price, images, category, sub_category, sizes, bestseller)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING product_id, created_at;`

	getProduct = `SELECT product_id, name, description, price, images, category, sub_category, sizes, bestseller, created_at
    FROM products
    WHERE product_id = $1;`

	deleteProduct = `DELETE FROM products
    WHERE product_id = $1;`

	createOrder = `INSERT INTO orders (user_id, items, amount, address, status, payment_method, paid)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING order_id, placed_at;`

	listUserOrders = `SELECT order_id, user_id, items, amount, address, status, payment_method, paid, placed_at
    FROM orders
    WHERE user_id = $1
    ORDER BY placed_at DESC;`

	listAllOrders = `SELECT order_id, user_id, items, amount, address, status, payment_method, paid, placed_at
    FROM orders
    ORDER BY placed_at DESC;`

	updateOrderStatus = `UPDATE orders
    SET status = $2
    WHERE order_id = $1;`
)
