package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	// 1. Регистрация нового пользователя.
	res, body := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":        "register",
		"username":      "ivan",
		"password":      "secret123",
		"role":          "user",
		"student_group": "Группа 2",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Регистрация не прошла")
	assert.Equal(t, true, body["success"], "В ответе регистрации нет success")

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ivan", user["username"], "Неверный username в ответе")
	assert.Equal(t, "user", user["role"], "Неверная роль в ответе")
	assert.Equal(t, "Группа 2", user["student_group"], "Неверная группа в ответе")
	assert.NotEmpty(t, user["created_at"], "В ответе нет created_at")
	assert.NotContains(t, user, "password", "Пароль не должен попадать в ответ")
	assert.NotEmpty(t, body["access_token"], "В ответе нет access токена")
	assert.NotEmpty(t, body["refresh_token"], "В ответе нет refresh токена")

	// 2. Повторная регистрация того же логина — конфликт.
	resDup, dupBody := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":   "register",
		"username": "ivan",
		"password": "another",
	})
	assert.Equal(t, http.StatusConflict, resDup.StatusCode, "Дубликат логина должен вернуть 409")
	assert.Equal(t, "Username already exists", dupBody["error"], "Неверное сообщение о дубликате")

	// 3. Вход возвращает те же данные, что были сохранены при регистрации.
	resLogin, loginBody := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":   "login",
		"username": "ivan",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resLogin.StatusCode, "Вход не прошёл")
	loginUser := loginBody["user"].(map[string]interface{})
	assert.Equal(t, user["id"], loginUser["id"], "Идентификатор пользователя не совпадает")
	assert.Equal(t, "ivan", loginUser["username"], "Username не совпадает")
	assert.Equal(t, "Группа 2", loginUser["student_group"], "Группа не совпадает")

	// 4. Неверный пароль.
	resBad, badBody := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":   "login",
		"username": "ivan",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resBad.StatusCode, "Неверный пароль должен вернуть 401")
	assert.Equal(t, "Invalid credentials", badBody["error"], "Неверное сообщение о неверных данных")

	// 5. Обязательность логина и пароля.
	resEmpty, _ := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":   "register",
		"username": "  ",
		"password": "",
	})
	assert.Equal(t, http.StatusBadRequest, resEmpty.StatusCode, "Пустые логин/пароль должны вернуть 400")

	// 6. Обновление токенов по refresh токену.
	resRefresh, refreshBody := doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":        "refresh",
		"refresh_token": body["refresh_token"],
	})
	assert.Equal(t, http.StatusOK, resRefresh.StatusCode, "Обновление токенов не прошло")
	assert.NotEmpty(t, refreshBody["access_token"], "В ответе refresh нет access токена")
}

func TestAdminAccess(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	// Регистрируем пользователя и добавляем заявку, чтобы отчёт был не пустым.
	doJSON(t, "POST", ts.URL+"/auth", map[string]interface{}{
		"action":   "register",
		"username": "admin",
		"password": "secret123",
		"role":     "admin",
	})
	doJSON(t, "POST", ts.URL+"/queue", map[string]interface{}{
		"user_id":  1,
		"username": "admin",
		"gpu_name": "RTX 4090",
	})

	// Без заголовка роли доступ закрыт.
	resNoRole, noRoleBody := doJSON(t, "GET", ts.URL+"/admin", nil)
	assert.Equal(t, http.StatusForbidden, resNoRole.StatusCode, "Без роли админа должен быть 403")
	assert.Equal(t, "Admin access required", noRoleBody["error"], "Неверное сообщение о запрете доступа")

	// Не-админская роль тоже отклоняется.
	reqUser, _ := http.NewRequest("GET", ts.URL+"/admin", nil)
	reqUser.Header.Set("X-User-Role", "user")
	resUser, err := http.DefaultClient.Do(reqUser)
	assert.NoError(t, err, "Ошибка запроса с ролью user")
	resUser.Body.Close()
	assert.Equal(t, http.StatusForbidden, resUser.StatusCode, "Роль user должна получить 403")

	// Админ получает пользователей, агрегаты и историю очереди.
	req, _ := http.NewRequest("GET", ts.URL+"/admin", nil)
	req.Header.Set("X-User-Role", "admin")
	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err, "Ошибка запроса админ-панели")
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode, "Админ не получил данные")

	var adminBody map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&adminBody), "Ошибка разбора ответа админ-панели")

	users := adminBody["users"].([]interface{})
	assert.Equal(t, 1, len(users), "В отчёте должен быть один пользователь")

	stats := adminBody["queue_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total"], "Неверный total в агрегатах")
	assert.Equal(t, float64(1), stats["waiting"], "Неверный waiting в агрегатах")
	assert.Equal(t, float64(0), stats["active"], "Неверный active в агрегатах")
	assert.Equal(t, float64(0), stats["completed"], "Неверный completed в агрегатах")

	allQueue := adminBody["all_queue"].([]interface{})
	assert.Equal(t, 1, len(allQueue), "В истории очереди должна быть одна запись")
}
