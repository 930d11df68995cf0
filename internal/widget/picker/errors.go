package picker

import "errors"

// ErrSuperseded возвращается, когда ответ пришел для даты, которую уже сменили
var ErrSuperseded = errors.New("picker: slot load superseded by a newer request")

// defaultErrorMessage текст ошибки, если сервер не прислал свой
const defaultErrorMessage = "Не удалось загрузить доступное время. Попробуйте еще раз."
